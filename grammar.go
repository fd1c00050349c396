package pegparse

// Grammar is a mapping from nonterminal name to a compiled
// instruction sequence. Each rule's stored sequence always ends with
// an IRet carrying that rule's reduction callback (possibly nil).
// Forward references are allowed: Define never looks another rule up,
// it just records the RuleRef's name, so a rule may be composed with
// rule_ref(name) for a name that is registered later. Grammar is
// mutated only by Define; once its rules stop changing, concurrent
// readers (multiple Parser instances) are safe.
type Grammar struct {
	rules map[string]Code
}

// NewGrammar returns an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]Code)}
}

// Define normalizes program to Code, appends IRet{action}, stores it
// under name, and returns RuleRef(name) so the defined rule can be
// composed as a first-class combinator immediately. A body that
// recurses into its own rule uses an explicit RuleRef(name), since the
// returned value does not exist until Define has stored the body.
func (g *Grammar) Define(name string, program any, action Reduction) Code {
	body := normalize(program)
	code := make(Code, 0, len(body)+1)
	code = append(code, body...)
	code = append(code, IRet{Action: action})
	g.rules[name] = code
	return RuleRef(name)
}

// Get returns the compiled sequence stored under name, or a
// *RuleNotFoundError if name was never defined. This is a fatal
// grammar-authoring error, not a parse failure: it is only ever
// raised while running a parse (jsr resolves rule names lazily) so
// that forward references work, never at Define time.
func (g *Grammar) Get(name string) (Code, error) {
	code, ok := g.rules[name]
	if !ok {
		return nil, &RuleNotFoundError{Name: name}
	}
	return code, nil
}

// Parser constructs a Parser bound to this grammar, starting at rule
// start, with context passed as the receiver of reduction callbacks.
func (g *Grammar) Parser(start string, context any) *Parser {
	return newParser(g, start, context, NewConfig())
}

// ParserWithConfig is like Parser but lets the caller override the
// default Config (e.g. to set a step budget or enable Trace).
func (g *Grammar) ParserWithConfig(start string, context any, cfg *Config) *Parser {
	return newParser(g, start, context, cfg)
}
