package utils

// LineFilter drops repeated candidate lines, keeping the first occurrence.
// Comparison is exact; "Foo" and "foo" are different candidates.
type LineFilter struct {
	seen map[string]struct{}
}

// NewLineFilter creates an empty filter sized for n lines
func NewLineFilter(n int) *LineFilter {
	return &LineFilter{seen: make(map[string]struct{}, n)}
}

// ShouldInclude returns true the first time a line is offered
func (f *LineFilter) ShouldInclude(line string) bool {
	if _, ok := f.seen[line]; ok {
		return false
	}
	f.seen[line] = struct{}{}
	return true
}

// Unique returns lines with duplicates removed, order preserved
func Unique(lines []string) []string {
	f := NewLineFilter(len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if f.ShouldInclude(l) {
			out = append(out, l)
		}
	}
	return out
}
