package minerva

// Mark reachability-marks the transitive structure rooted at root. It
// maintains an explicit work stack rather than recursing, so a deep pair
// spine can't blow the Go stack; cycles are handled by the mark-bit check,
// which turns any already-marked node into a no-op.
func Mark(root Value) {
	work := []Value{root}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		hdr := cur.header()
		if hdr == nil || hdr.mark {
			continue
		}
		hdr.mark = true

		switch hdr.tag {
		case kindPair:
			p := cur.AsPair()
			work = append(work, p.Car(), p.Cdr())
		case kindVector:
			work = append(work, cur.AsVector().Items()...)
		case kindHashMap:
			cur.AsHashMap().Range(func(k, v Value) bool {
				work = append(work, k, v)
				return true
			})
		case kindClosure:
			c := cur.AsClosure()
			work = append(work, c.Consts()...)
			if env := c.Env(); env != nil {
				env.mark()
			}
		case kindString, kindBigInt:
			// no children
		}
	}
}

// MarkAll marks every Value in roots.
func MarkAll(roots []Value) {
	for _, r := range roots {
		Mark(r)
	}
}

// Sweep walks the global object list, unlinking every object whose mark bit
// is clear and clearing the mark bit of every survivor. Relative order of
// survivors is preserved because the list is only ever spliced, never
// reordered.
func (h *Heap) Sweep() {
	liveBefore := h.live
	var prev *objHeader
	cur := h.head
	for cur != nil {
		next := cur.next
		if !cur.mark {
			if prev == nil {
				h.head = next
			} else {
				prev.next = next
			}
			h.live--
			h.freed++
		} else {
			cur.mark = false
			prev = cur
		}
		cur = next
	}
	debugf("sweep freed=%d live=%d", liveBefore-h.live, h.live)
}

// Collect marks every Value in roots and then sweeps h. It is a
// convenience wrapper; callers that need finer control can call Mark and
// Sweep directly.
func (h *Heap) Collect(roots ...Value) {
	for _, r := range roots {
		Mark(r)
	}
	h.Sweep()
}

// Len reports how many objects are currently threaded onto the global
// object list, walking it head to tail. It exists for tests asserting the
// "allocation threading" property; production code should prefer Stats.
func (h *Heap) Len() int {
	n := 0
	for cur := h.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}
