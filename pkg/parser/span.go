package parser

// Span represents a contiguous slice of the original input string.  Instead
// of holding the text itself, it retains the physical indices so that errors
// can be reported against the exact characters which produced them.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the
// original string.
func (p Span) Length() int {
	return p.end - p.start
}
