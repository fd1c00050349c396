package pegparse

import "fmt"

// Status is the terminal state of a Parser after it halts.
type Status int

const (
	// StatusNone means the parser has not halted yet.
	StatusNone Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return ""
	}
}

// nullScalar is the reserved input-terminator sentinel: code point 0
// never matches Any(), so client code may use it as a marker without
// it ever being mistaken for real input.
const nullScalar = rune(0)

// Parser is a register-machine VM bound to a Grammar and a start
// rule. It executes one instruction per Step, dispatching on opcode.
// It accepts input incrementally (Accept) and may be restarted from
// the current cursor to extract successive matches (MatchAll). A
// Parser is strictly single-threaded and non-reentrant; independent
// Parser instances over the same Grammar may run concurrently because
// a Grammar is immutable once its rules stop changing.
type Parser struct {
	grammar *Grammar
	start   string
	context any
	cfg     *Config

	code   Code
	pc     int
	input  []rune
	cursor int
	stack  dataStack
	fp     int
	bp     *backtrackPoint

	running bool
	status  Status
	clock   int
	ffp     int
	lastErr error
}

func bootloader(start string) Code {
	return Code{IJsr{Rule: start}, IEnd{}}
}

func newParser(g *Grammar, start string, context any, cfg *Config) *Parser {
	if cfg == nil {
		cfg = NewConfig()
	}
	p := &Parser{grammar: g, start: start, context: context, cfg: cfg}
	p.resetVM()
	return p
}

func (p *Parser) resetVM() {
	p.code = bootloader(p.start)
	p.pc = 0
	p.stack = dataStack{}
	p.fp = 0
	p.bp = nil
	p.running = true
	p.status = StatusNone
	p.ffp = -1
}

// Context returns the value passed as the receiver of reduction
// callbacks.
func (p *Parser) Context() any { return p.context }

// Status returns the parser's terminal status ("", "success", or
// "failure" via Status.String()).
func (p *Parser) Status() Status { return p.status }

// Running reports whether the VM has not yet halted.
func (p *Parser) Running() bool { return p.running }

// Cursor returns the index of the next unread input position.
func (p *Parser) Cursor() int { return p.cursor }

// FarthestFailurePos returns the farthest cursor position any
// char/charset/any/move instruction failed at since the last
// (re)start, or -1 if none has failed yet. This
// is purely a diagnostic aid; it never affects match/fail semantics.
func (p *Parser) FarthestFailurePos() int { return p.ffp }

// Accept appends more to the input and drives the VM while it is
// running and input remains unconsumed. This is the suspension point
// between input chunks: Accept naturally stops at whichever consuming
// instruction would exhaust the buffer, without needing any explicit
// "not enough input yet" signal. Call Run after the final Accept to
// drive the VM the rest of the way to a halt.
func (p *Parser) Accept(more string) error {
	p.input = append(p.input, []rune(more)...)
	for p.running && p.cursor < len(p.input) {
		if err := p.step(); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the VM to completion: it steps until running is false.
func (p *Parser) Run() error {
	for p.running {
		if err := p.step(); err != nil {
			return err
		}
	}
	return nil
}

// Restart resets the VM (code, pc, stack, backtrack chain, running
// flag) without resetting the cursor, and reports whether input
// remains unconsumed. It is used by MatchAll to resume scanning after
// a successful or failed match.
func (p *Parser) Restart() bool {
	p.resetVM()
	return p.cursor < len(p.input)
}

// Skip advances the cursor by n without touching the VM's code/stack
// state. Used between restarts to advance past non-matching input.
func (p *Parser) Skip(n int) {
	p.cursor += n
}

// Result returns the value produced by a successful parse, or (nil,
// false) if the parser has not halted with StatusSuccess.
func (p *Parser) Result() (any, bool) {
	if p.status != StatusSuccess || len(p.stack.cells) == 0 {
		return nil, false
	}
	return p.stack.cells[0].asUser(), true
}

// MatchAll returns a lazy producer of successive successful matches:
// it drives the VM to a halt, yields the result and restarts on
// success, skips one input position and restarts on failure with
// input remaining, or stops the sequence on failure with no input
// left. Any error encountered while driving the VM (a grammar error
// or a callback panic) stops the sequence early; call Err after
// ranging to see whether that happened.
func (p *Parser) MatchAll() func(yield func(any) bool) {
	return func(yield func(any) bool) {
		for {
			if err := p.Run(); err != nil {
				p.lastErr = err
				return
			}
			if p.status == StatusSuccess {
				v, _ := p.Result()
				if !yield(v) {
					return
				}
				p.Restart()
				continue
			}
			if p.cursor >= len(p.input) {
				return
			}
			p.Skip(1)
			p.Restart()
		}
	}
}

// Err returns the error, if any, that stopped a MatchAll iteration
// early.
func (p *Parser) Err() error { return p.lastErr }

func (p *Parser) updateFFP(cursor int) {
	if cursor > p.ffp {
		p.ffp = cursor
	}
}

// step executes exactly one instruction: it reads the instruction at
// pc, advances pc past it, and dispatches on its opcode via a type
// switch over the tagged Instruction variant.
func (p *Parser) step() error {
	if !p.running {
		return nil
	}
	if p.cfg.StepBudget > 0 && p.clock >= p.cfg.StepBudget {
		return &StepBudgetExceededError{Steps: p.clock}
	}
	p.clock++

	instr := p.code[p.pc]
	next := p.pc + 1

	if p.cfg.Trace != nil {
		fmt.Fprintf(p.cfg.Trace, "pc=%04d op=%-8s cursor=%d sp=%d fp=%d\n",
			p.pc, instr.Op(), p.cursor, p.stack.len(), p.fp)
	}

	fail := false

	switch v := instr.(type) {
	case IChar:
		if p.cursor < len(p.input) && p.input[p.cursor] == v.Char {
			p.stack.push(scalarCell(v.Char))
			p.cursor++
			p.pc = next
		} else {
			p.updateFFP(p.cursor)
			fail = true
		}

	case ICharset:
		if p.cursor < len(p.input) && v.Set.Has(p.input[p.cursor]) {
			p.stack.push(scalarCell(p.input[p.cursor]))
			p.cursor++
			p.pc = next
		} else {
			p.updateFFP(p.cursor)
			fail = true
		}

	case IAny:
		if p.cursor < len(p.input) && p.input[p.cursor] != nullScalar {
			p.stack.push(scalarCell(p.input[p.cursor]))
			p.cursor++
			p.pc = next
		} else {
			p.updateFFP(p.cursor)
			fail = true
		}

	case IMove:
		newCursor := p.cursor + v.Delta
		if newCursor < 0 {
			p.updateFFP(p.cursor)
			fail = true
		} else {
			p.cursor = newCursor
			p.pc = next
		}

	case IPushd:
		p.stack.push(userCell(v.Value))
		p.pc = next

	case IJsr:
		code, err := p.grammar.Get(v.Rule)
		if err != nil {
			p.running = false
			return err
		}
		p.stack.push(savedPCCell(next))
		p.stack.push(savedCodeCell(p.code))
		p.stack.push(savedFPCell(p.fp))
		p.fp = p.stack.len()
		p.code = code
		p.pc = 0

	case IRet:
		values := p.stack.sliceFrom(p.fp)
		p.stack.truncate(p.fp)
		fpCell := p.stack.pop()
		codeCell := p.stack.pop()
		pcCell := p.stack.pop()
		p.fp = fpCell.fp
		p.code = codeCell.code
		p.pc = pcCell.pc

		result, err := applyReduction(p.context, v.Action, values, p.cursor)
		if err != nil {
			p.running = false
			return err
		}
		p.stack.push(userCell(result))

	case ICall:
		values := p.stack.sliceFrom(p.fp)
		p.stack.truncate(p.fp)
		fpCell := p.stack.pop()
		p.fp = fpCell.fp

		result, err := applyReduction(p.context, v.Action, values, p.cursor)
		if err != nil {
			p.running = false
			return err
		}
		p.stack.push(userCell(result))
		p.pc = next

	case IFrame:
		p.stack.push(savedFPCell(p.fp))
		p.fp = p.stack.len()
		p.pc = next

	case IDrop:
		p.stack.truncate(p.fp)
		fpCell := p.stack.pop()
		p.fp = fpCell.fp
		p.pc = next

	case IReduce:
		values := p.stack.sliceFrom(p.fp)
		p.stack.truncate(p.fp)
		fpCell := p.stack.pop()
		p.fp = fpCell.fp

		result, err := applyReduction(p.context, v.Action, values, p.cursor)
		if err != nil {
			p.running = false
			return err
		}
		p.stack.push(userCell(result))
		p.pc = next

	case IChoice:
		p.bp = &backtrackPoint{
			prev:   p.bp,
			pc:     next + v.Offset,
			code:   p.code,
			cursor: p.cursor,
			sp:     p.stack.len(),
			fp:     p.fp,
		}
		p.pc = next

	case ICommit:
		p.bp = p.bp.prev
		p.pc = next + v.Offset

	case IFail:
		fail = true

	case IEnd:
		p.running = false
		p.status = StatusSuccess
		return nil

	default:
		panic(fmt.Sprintf("pegparse: unhandled opcode %T", instr))
	}

	if fail {
		p.doFail()
	}
	return nil
}

// doFail restores the top backtrack record into the VM registers, or
// halts with StatusFailure if the backtrack chain is empty.
func (p *Parser) doFail() {
	if p.bp == nil {
		p.running = false
		p.status = StatusFailure
		return
	}
	bt := p.bp
	p.bp = bt.prev
	p.pc = bt.pc
	p.code = bt.code
	p.cursor = bt.cursor
	p.stack.truncate(bt.sp)
	p.fp = bt.fp
}

// applyReduction invokes action (if non-nil) with context and values,
// recovering a panic into a *CallbackError. A nil action packs values
// as an ordered list, matching ret/call/reduce's "else push D" clause.
func applyReduction(context any, action Reduction, values []any, cursor int) (result any, err error) {
	if action == nil {
		return values, nil
	}
	defer recoverCallback(cursor, &err)
	result = action(context, values)
	return result, err
}
