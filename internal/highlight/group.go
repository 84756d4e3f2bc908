package highlight

// EntryKind discriminates the two kinds of display run.
type EntryKind int

const (
	// EntryToken is a single token not covered by any interval.
	EntryToken EntryKind = iota
	// EntryInterval is a maximal run of consecutive tokens sharing one
	// covering interval.
	EntryInterval
)

// Entry is one display run. A renderer walks the entry list left to right
// and paints one background per interval entry instead of per token.
type Entry struct {
	Kind EntryKind

	// Token entries
	Token Token
	Index int

	// Interval entries
	Interval   Interval
	StartIndex int
	Members    []Token
}

// Group scans tokens once, left to right, merging consecutive tokens that
// share the same covering interval into a single interval entry. Uncovered
// tokens become singleton token entries. Output preserves token order.
func Group(tokens []Token, set []Interval) []Entry {
	var entries []Entry
	for i := 0; i < len(tokens); i++ {
		iv, covered := FindCovering(tokens[i], set)
		if !covered {
			entries = append(entries, Entry{
				Kind:  EntryToken,
				Token: tokens[i],
				Index: i,
			})
			continue
		}
		run := Entry{
			Kind:       EntryInterval,
			Interval:   iv,
			StartIndex: i,
			Members:    []Token{tokens[i]},
		}
		for i+1 < len(tokens) {
			next, ok := FindCovering(tokens[i+1], set)
			if !ok || next.ID != iv.ID {
				break
			}
			i++
			run.Members = append(run.Members, tokens[i])
		}
		entries = append(entries, run)
	}
	return entries
}
