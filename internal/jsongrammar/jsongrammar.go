// Package jsongrammar builds a JSON grammar purely from pegparse's
// combinators: objects, arrays, strings with escapes, numbers,
// booleans and null, each rule reducing straight to a Go `any` tree
// (map[string]any / []any / string / float64 / bool / nil). It is a
// capstone integration test for Grammar/Join/Consume/Not, and it
// is what cmd/langlang-bench drives for comparison against
// github.com/buger/jsonparser's streaming scanner.
package jsongrammar

import (
	"strconv"
	"strings"

	"github.com/s-leroux/Pegparse"
)

var (
	ws     = pegparse.ZeroOrMore(pegparse.Charset(" \t\r\n"))
	digits = pegparse.Charset("0-9")
)

func id(_ any, values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

func joinString(_ any, values []any) any {
	var b strings.Builder
	for _, v := range values {
		switch x := v.(type) {
		case rune:
			b.WriteRune(x)
		case string:
			b.WriteString(x)
		}
	}
	return b.String()
}

func decodeEscape(_ any, values []any) any {
	switch values[0].(rune) {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '"':
		return '"'
	case '\\':
		return '\\'
	case '/':
		return '/'
	default:
		return values[0]
	}
}

func reduceNumber(_ any, values []any) any {
	n, err := strconv.ParseFloat(values[0].(string), 64)
	if err != nil {
		panic(err)
	}
	return n
}

func reduceArray(_ any, values []any) any {
	items := make([]any, 0, len(values))
	for _, v := range values {
		if !pegparse.IsAbsent(v) {
			items = append(items, v)
		}
	}
	return items
}

func reduceMember(_ any, values []any) any {
	return [2]any{values[0].(string), values[1]}
}

func reduceObject(_ any, values []any) any {
	obj := make(map[string]any, len(values))
	for _, v := range values {
		if pegparse.IsAbsent(v) {
			continue
		}
		pair := v.([2]any)
		obj[pair[0].(string)] = pair[1]
	}
	return obj
}

// NewGrammar builds a complete JSON grammar:
//
//	value   := ws, choice(object, array, string, number, "true", "false", "null"), ws
//	object  := "{", ws, zero_or_one(member, zero_or_more(",", member)), ws, "}"
//	member  := ws, string, ws, ":", value
//	array   := "[", ws, zero_or_one(value, zero_or_more(",", value)), ws, "]"
//	string  := '"', zero_or_more(choice(escape, not('"') any())), '"'
//	escape  := "\\", any()
//	number  := zero_or_one("-"), one_or_more(digit), zero_or_one(".", one_or_more(digit))
func NewGrammar() *pegparse.Grammar {
	g := pegparse.NewGrammar()

	escape := g.Define("escape",
		pegparse.Sequence(pegparse.Consume(pegparse.Literal("\\")), pegparse.Any()),
		decodeEscape,
	)

	str := g.Define("string",
		pegparse.Sequence(
			pegparse.Consume(pegparse.Literal(`"`)),
			pegparse.ZeroOrMore(pegparse.Choice(
				escape,
				pegparse.Sequence(pegparse.Not(pegparse.Literal(`"`)), pegparse.Any()),
			)),
			pegparse.Consume(pegparse.Literal(`"`)),
		),
		joinString,
	)

	number := g.Define("number",
		pegparse.Join(pegparse.Sequence(
			pegparse.ZeroOrOne(pegparse.Literal("-")),
			pegparse.OneOrMore(digits),
			pegparse.ZeroOrOne(pegparse.Sequence(pegparse.Literal("."), pegparse.OneOrMore(digits))),
		)),
		reduceNumber,
	)

	boolTrue := g.Define("true", pegparse.Literal("true"), func(_ any, _ []any) any { return true })
	boolFalse := g.Define("false", pegparse.Literal("false"), func(_ any, _ []any) any { return false })
	null := g.Define("null", pegparse.Literal("null"), func(_ any, _ []any) any { return nil })

	// Forward-declared: member/array reference value before it is
	// defined, and value references object/array back. jsr looks rule
	// names up only at parse time, so this is safe.
	value := pegparse.RuleRef("value")

	member := g.Define("member",
		pegparse.Sequence(
			pegparse.Consume(ws),
			str,
			pegparse.Consume(ws),
			pegparse.Consume(pegparse.Literal(":")),
			value,
		),
		reduceMember,
	)

	object := g.Define("object",
		pegparse.Sequence(
			pegparse.Consume(pegparse.Literal("{")),
			pegparse.Consume(ws),
			pegparse.ZeroOrOne(pegparse.Sequence(
				member,
				pegparse.ZeroOrMore(pegparse.Sequence(pegparse.Consume(pegparse.Literal(",")), member)),
			)),
			pegparse.Consume(ws),
			pegparse.Consume(pegparse.Literal("}")),
		),
		reduceObject,
	)

	array := g.Define("array",
		pegparse.Sequence(
			pegparse.Consume(pegparse.Literal("[")),
			pegparse.Consume(ws),
			pegparse.ZeroOrOne(pegparse.Sequence(
				value,
				pegparse.ZeroOrMore(pegparse.Sequence(pegparse.Consume(pegparse.Literal(",")), value)),
			)),
			pegparse.Consume(ws),
			pegparse.Consume(pegparse.Literal("]")),
		),
		reduceArray,
	)

	g.Define("value",
		pegparse.Sequence(
			pegparse.Consume(ws),
			pegparse.Choice(object, array, str, number, boolTrue, boolFalse, null),
			pegparse.Consume(ws),
		),
		id,
	)

	return g
}

// Parse parses a single JSON document into a Go value tree.
func Parse(input string) (any, bool, error) {
	g := NewGrammar()
	p := g.Parser("value", nil)
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
	return result, true, nil
}
