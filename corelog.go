package minerva

import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger returns the package's diagnostic logger. It is a no-op by default
// (output discarded), the same lazy-initialised, opt-in pattern used
// elsewhere in the corpus for library code that shouldn't spam stderr
// unless a caller asks for it: construct a logger once, default it to
// silence, and let SetLogger opt back in. MINERVA_DEBUG only enables the
// debugf calls; their output still goes nowhere until SetLogger is called.
func Logger() *log.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = log.New(io.Discard, "minerva: ", 0)
		}
	})
	return logger
}

// SetLogger replaces the package's diagnostic logger, e.g. to direct
// allocation and GC diagnostics to stderr during debugging.
func SetLogger(l *log.Logger) {
	logger = l
}

var (
	logger     *log.Logger
	loggerOnce sync.Once
)

// debugEnabled gates debugAssertKind and any other debug-only diagnostics
// behind the MINERVA_DEBUG environment variable, mirroring the "detect in
// debug, undefined in release" contract §4.1 and §7 describe for accessor
// misuse.
var debugEnabled = os.Getenv("MINERVA_DEBUG") != ""

func debugAssertKind(ok bool, op string, v Value) {
	if debugEnabled && !ok {
		panic(TypeMismatchError{Op: op, Value: v})
	}
}

func debugf(format string, args ...any) {
	if debugEnabled {
		Logger().Printf(format, args...)
	}
}
