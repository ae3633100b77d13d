package editor

// selectorKind enumerates the mutually exclusive targeting modes of
// str_replace, highest precedence first.
type selectorKind int

const (
	selDeleteLines selectorKind = iota
	selDeleteRange
	selLineNumbers
	selLineRange
	selAllOccurrences
	selFirstOccurrence
)

// selector is the resolved targeting decision for one str_replace call.
// It is built exactly once per call by resolveSelector, after every
// supplied line parameter has passed bounds validation, so the mutation
// code never revisits parameter checks.
type selector struct {
	kind  selectorKind
	lines []int // 1-based, selDeleteLines and selLineNumbers
	start int   // 1-based inclusive, selDeleteRange and selLineRange
	end   int
	regex bool
}

// resolveSelector validates every line-addressing parameter that was
// supplied, whether or not it ends up winning, then picks the active
// variant by precedence: delete_lines, delete_range, line_numbers,
// line_range, line_all, first occurrence.
func resolveSelector(req *Request, numLines int) (selector, error) {
	if len(req.LineNumbers) > 0 {
		if err := validateBounds("line number", req.LineNumbers, numLines); err != nil {
			return selector{}, err
		}
	}
	if len(req.LineRange) > 0 {
		if err := validateRangePair("line range", "line_range", req.LineRange, numLines); err != nil {
			return selector{}, err
		}
	}
	if len(req.DeleteLines) > 0 {
		if err := validateBounds("delete lines", req.DeleteLines, numLines); err != nil {
			return selector{}, err
		}
	}
	if len(req.DeleteRange) > 0 {
		if err := validateRangePair("delete range", "delete_range", req.DeleteRange, numLines); err != nil {
			return selector{}, err
		}
	}

	sel := selector{regex: req.Regex}
	switch {
	case len(req.DeleteLines) > 0:
		sel.kind = selDeleteLines
		sel.lines = req.DeleteLines
	case len(req.DeleteRange) > 0:
		sel.kind = selDeleteRange
		sel.start, sel.end = req.DeleteRange[0], req.DeleteRange[1]
	case len(req.LineNumbers) > 0:
		sel.kind = selLineNumbers
		sel.lines = req.LineNumbers
	case len(req.LineRange) > 0:
		sel.kind = selLineRange
		sel.start, sel.end = req.LineRange[0], req.LineRange[1]
	case req.LineAll:
		sel.kind = selAllOccurrences
	default:
		sel.kind = selFirstOccurrence
	}
	return sel, nil
}

// validateBounds rejects any index outside [1, numLines], reporting the
// smallest offender first, then the largest.
func validateBounds(label string, ns []int, numLines int) error {
	lo, hi := ns[0], ns[0]
	for _, n := range ns[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if lo <= 0 {
		return errLineBounds(label, lo, numLines)
	}
	if numLines < hi {
		return errLineBounds(label, hi, numLines)
	}
	return nil
}

// validateRangePair checks bounds, then arity, then ordering, so an
// out-of-bounds value is reported even when the pair is malformed.
func validateRangePair(label, param string, pair []int, numLines int) error {
	if err := validateBounds(label, pair, numLines); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errInvalidParam(CmdStrReplace, param, pair, "It should be a list of two integers.")
	}
	if pair[0] > pair[1] {
		return errReversedRange(label, pair[0], pair[1])
	}
	return nil
}
