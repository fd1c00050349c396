// Package calc builds a small right-recursive arithmetic grammar
// purely from pegparse's combinators. It exercises rule recursion and
// numeric reductions end to end as a runnable example alongside the
// library itself.
package calc

import (
	"strconv"

	"github.com/s-leroux/Pegparse"
)

// reduceSum implements sum := product, zero_or_one("+", sum), folding
// a trailing absent term to the product's own value.
func reduceSum(_ any, values []any) any {
	product := values[0].(int)
	rest := values[1]
	if pegparse.IsAbsent(rest) {
		return product
	}
	return product + rest.(int)
}

// reduceProduct implements product := term, zero_or_one("*", product).
func reduceProduct(_ any, values []any) any {
	term := values[0].(int)
	rest := values[1]
	if pegparse.IsAbsent(rest) {
		return term
	}
	return term * rest.(int)
}

func reduceTerm(_ any, values []any) any {
	n, err := strconv.Atoi(values[0].(string))
	if err != nil {
		panic(err)
	}
	return n
}

// NewGrammar builds:
//
//	S       := sum
//	sum     := product, zero_or_one(consume("+"), sum)
//	product := term, zero_or_one(consume("*"), product)
//	term    := one_or_more(charset("0-9"))    (parsed as an int)
func NewGrammar() *pegparse.Grammar {
	g := pegparse.NewGrammar()

	term := g.Define("term", pegparse.String(pegparse.Charset("0-9")), reduceTerm)

	product := g.Define("product",
		pegparse.Sequence(
			term,
			pegparse.ZeroOrOne(pegparse.Sequence(pegparse.Consume(pegparse.Literal("*")), pegparse.RuleRef("product"))),
		),
		reduceProduct,
	)

	sum := g.Define("sum",
		pegparse.Sequence(
			product,
			pegparse.ZeroOrOne(pegparse.Sequence(pegparse.Consume(pegparse.Literal("+")), pegparse.RuleRef("sum"))),
		),
		reduceSum,
	)

	g.Define("S", sum, func(_ any, values []any) any { return values[0] })

	return g
}

// Eval parses and reduces input to its integer result.
func Eval(input string) (int, bool, error) {
	g := NewGrammar()
	p := g.Parser("S", nil)
	if err := p.Accept(input); err != nil {
		return 0, false, err
	}
	if err := p.Run(); err != nil {
		return 0, false, err
	}
	if p.Status() != pegparse.StatusSuccess {
		return 0, false, nil
	}
	result, _ := p.Result()
	return result.(int), true, nil
}
