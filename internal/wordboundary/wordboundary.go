// Package wordboundary builds a tiny grammar that finds runs of
// letters bounded by a negative lookbehind. It exists to exercise
// Lookaround and MatchAll together end to end, beyond the single
// inline case already covered by the core package's own tests.
package wordboundary

import "github.com/s-leroux/Pegparse"

// lastValue drops the WB rule's vacuous leading capture (WB itself
// never pushes anything user-visible; jsr/ret still contributes one
// empty-list cell for it) and keeps the joined word that follows.
func lastValue(_ any, values []any) any {
	return values[len(values)-1]
}

// NewGrammar builds:
//
//	WB := lookaround(-1, charset("a-z", "A-Z"))
//	S  := WB, one_or_more(charset("a-z", "A-Z"))   (joined to string)
func NewGrammar() *pegparse.Grammar {
	g := pegparse.NewGrammar()

	wb := g.Define("WB", pegparse.Lookaround(-1, pegparse.Charset("a-z", "A-Z")), nil)

	g.Define("S",
		pegparse.Sequence(wb, pegparse.String(pegparse.Charset("a-z", "A-Z"))),
		lastValue,
	)

	return g
}

// Words scans input and returns every maximal run of letters that is
// not immediately preceded by another letter, via match_all.
func Words(input string) ([]string, error) {
	g := NewGrammar()
	p := g.Parser("S", nil)
	if err := p.Accept(input); err != nil {
		return nil, err
	}

	var words []string
	for v := range p.MatchAll() {
		words = append(words, v.(string))
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
