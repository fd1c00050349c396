// Package csv builds a comma-separated-values grammar purely from
// pegparse's combinators. It exists to exercise Grammar/Capture/
// Join/Consume end-to-end against a small but real grammar, as a
// runnable example alongside the library itself.
package csv

import "github.com/s-leroux/Pegparse"

// identity unwraps a rule's single captured value back out of the
// one-element list Ret would otherwise wrap it in; value, quoted and
// data all need it since each pushes exactly one value of its own.
func identity(_ any, values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// NewGrammar builds:
//
//	S      := data, zero_or_more(consume(","), data)
//	data   := choice(quoted, value)            (identity reduction)
//	value  := zero_or_more(not(","), any())     (joined to string)
//	quoted := consume(`"`), zero_or_more(not(`"`), any()), consume(`"`)  (joined to string)
func NewGrammar() *pegparse.Grammar {
	g := pegparse.NewGrammar()

	value := g.Define("value",
		pegparse.Join(pegparse.ZeroOrMore(pegparse.Sequence(
			pegparse.Not(pegparse.Literal(",")),
			pegparse.Any(),
		))),
		identity,
	)

	quoted := g.Define("quoted",
		pegparse.Join(pegparse.Sequence(
			pegparse.Consume(pegparse.Literal(`"`)),
			pegparse.ZeroOrMore(pegparse.Sequence(
				pegparse.Not(pegparse.Literal(`"`)),
				pegparse.Any(),
			)),
			pegparse.Consume(pegparse.Literal(`"`)),
		)),
		identity,
	)

	data := g.Define("data", pegparse.Choice(quoted, value), identity)

	g.Define("S",
		pegparse.Sequence(
			data,
			pegparse.ZeroOrMore(pegparse.Sequence(pegparse.Consume(pegparse.Literal(",")), data)),
		),
		nil,
	)

	return g
}

// Parse runs the CSV grammar over input and returns the parsed
// fields, in order.
func Parse(input string) ([]string, bool, error) {
	g := NewGrammar()
	p := g.Parser("S", nil)
	if err := p.Accept(input); err != nil {
		return nil, false, err
	}
	if err := p.Run(); err != nil {
		return nil, false, err
	}
	if p.Status() != pegparse.StatusSuccess {
		return nil, false, nil
	}
	result, _ := p.Result()
	cells := result.([]any)

	// zero_or_more opens no frame of its own, so every field pushed
	// by "data" across every iteration lands flatly in S's capture
	// list alongside the first one.
	fields := make([]string, 0, len(cells))
	for _, c := range cells {
		fields = append(fields, c.(string))
	}
	return fields, true, nil
}
