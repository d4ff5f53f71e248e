package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mnrv-lang/minerva"
)

type args struct {
	inputPath *string
	debug     *bool
}

func readArgs() *args {
	a := &args{
		inputPath: flag.String("input", "", "Path to the source file to read"),
		debug:     flag.Bool("debug", false, "Print heap stats before and after collection"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.inputPath == "" {
		log.Fatal("Input not informed")
	}
	if *a.debug {
		os.Setenv("MINERVA_DEBUG", "1")
	}

	src, err := os.ReadFile(*a.inputPath)
	if err != nil {
		log.Fatalf("Can't open input file: %s", err.Error())
	}

	exprs, err := minerva.Parse(string(src))
	if err != nil {
		log.Fatalf("Can't read input: %s", err.Error())
	}

	for _, e := range exprs {
		fmt.Println(e.Display(minerva.DefaultInterner))
	}

	liveBefore, _, _ := minerva.DefaultHeap.Stats()
	minerva.DefaultHeap.Collect(exprs...)
	liveAfter, _, freed := minerva.DefaultHeap.Stats()

	if *a.debug {
		fmt.Printf("heap: %d -> %d objects (%d freed)\n", liveBefore, liveAfter, freed)
	}
}
