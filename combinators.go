package pegparse

// This file holds the pure combinator surface: functions that take
// grammar fragments and return immutable Code values. None of them
// touch VM state; they only emit instruction patterns. Offsets are
// stated in instruction-slot units (see instr.go's Code doc comment):
// pc advances by one slot per instruction, so a Choice or Commit
// offset of N means "skip N instructions", not "skip N bytes".

// arg normalizes a single combinator argument (Code, string, or
// []Code) the way Grammar.Define normalizes a whole rule body.
func arg(program any) Code { return normalize(program) }

// Literal compiles a string to one IChar per scalar. The empty string
// compiles to an empty Code.
func Literal(s string) Code {
	code := make(Code, 0, len(s))
	for _, c := range s {
		code = append(code, IChar{Char: c})
	}
	return code
}

// Charset compiles a charset built from specs (see NewCharSet) to a
// single ICharset.
func Charset(specs ...string) Code {
	return Code{ICharset{Set: NewCharSet(specs...)}}
}

// Any matches and consumes any single scalar.
func Any() Code {
	return Code{IAny{}}
}

// Sequence concatenates its arguments' instructions in order.
func Sequence(programs ...any) Code {
	var code Code
	for _, p := range programs {
		code = append(code, arg(p)...)
	}
	return code
}

// Concat is an alias for Sequence.
func Concat(programs ...any) Code { return Sequence(programs...) }

// Choice builds ordered-choice alternation, right-associative:
// choice(a) == a, and choice(a,b,c) == choice(a, choice(b,c)).
func Choice(programs ...any) Code {
	if len(programs) == 0 {
		return Code{}
	}
	if len(programs) == 1 {
		return arg(programs[0])
	}
	a := arg(programs[0])
	rest := Choice(programs[1:]...)
	code := make(Code, 0, len(a)+len(rest)+2)
	code = append(code, IChoice{Offset: len(a) + 1})
	code = append(code, a...)
	code = append(code, ICommit{Offset: len(rest)})
	code = append(code, rest...)
	return code
}

// ZeroOrMore matches p zero or more times, leaving the cursor at the
// first position p no longer matches.
func ZeroOrMore(program any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+2)
	code = append(code, IChoice{Offset: len(p) + 1})
	code = append(code, p...)
	code = append(code, ICommit{Offset: -(len(p) + 2)})
	return code
}

// OneOrMore matches p one or more times.
func OneOrMore(program any) Code {
	p := arg(program)
	return Sequence(p, ZeroOrMore(p))
}

// Optional matches p zero or one time, pushing def when p does not
// match.
func Optional(program any, def any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+3)
	code = append(code, IChoice{Offset: len(p) + 1})
	code = append(code, p...)
	code = append(code, ICommit{Offset: 1})
	code = append(code, IPushd{Value: def})
	return code
}

// ZeroOrOne is Optional with the Absent sentinel as the default.
func ZeroOrOne(program any) Code {
	return Optional(program, Absent)
}

// Not is the negative lookahead predicate: it matches iff p does not
// match, never consuming input or leaving captures.
func Not(program any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+3)
	code = append(code, IChoice{Offset: len(p) + 2})
	code = append(code, p...)
	code = append(code, ICommit{Offset: 0})
	code = append(code, IFail{})
	return code
}

// And is the positive lookahead predicate: and(p) == not(not(p)).
func And(program any) Code {
	return Not(Not(program))
}

// Lookaround moves the cursor by delta (negative for lookbehind, e.g.
// word-boundary checks) before testing p as a predicate, then
// restores the cursor whether p matched or not.
func Lookaround(delta int, program any) Code {
	return Not(Sequence(Code{IMove{Delta: delta}}, arg(program)))
}

// RuleRef compiles to a subroutine call into the named grammar rule.
func RuleRef(name string) Code {
	return Code{IJsr{Rule: name}}
}

// Consume matches p and discards its captures, leaving the stack
// unchanged on success beyond the cursor advance p itself performs.
func Consume(program any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+2)
	code = append(code, IFrame{})
	code = append(code, p...)
	code = append(code, IDrop{})
	return code
}

// Capture matches p and packs its captures into a single ordered-list
// value (one cell pushed on success).
func Capture(program any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+2)
	code = append(code, IFrame{})
	code = append(code, p...)
	code = append(code, IReduce{Action: nil})
	return code
}

// joinReduction concatenates its captured scalars/strings into a
// single string value.
func joinReduction(_ any, values []any) any {
	var s []rune
	for _, v := range values {
		switch x := v.(type) {
		case rune:
			s = append(s, x)
		case string:
			s = append(s, []rune(x)...)
		}
	}
	return string(s)
}

// Join matches p and packs its captures into a single string value.
func Join(program any) Code {
	p := arg(program)
	code := make(Code, 0, len(p)+2)
	code = append(code, IFrame{})
	code = append(code, p...)
	code = append(code, IReduce{Action: joinReduction})
	return code
}

// String matches p one or more times and joins the captures into a
// string (join ∘ one_or_more).
func String(program any) Code {
	return Join(OneOrMore(program))
}

// Except matches head only if none of tail matches first: not(tail1),
// not(tail2), ..., head.
func Except(head any, tail ...any) Code {
	programs := make([]any, 0, len(tail)+1)
	for _, t := range tail {
		programs = append(programs, Not(t))
	}
	programs = append(programs, head)
	return Sequence(programs...)
}

// AnyExcept matches any single scalar that is not matched by any of
// tail (except ∘ any).
func AnyExcept(tail ...any) Code {
	return Except(Any(), tail...)
}
