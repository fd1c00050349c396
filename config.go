package pegparse

import "io"

// Config carries the few knobs the core VM exposes as optional
// safeguards: a step budget or clock limit, and a debug trace hook.
// Neither is required to match/fail correctly, so both default off.
type Config struct {
	// StepBudget caps the number of VM steps Run/Accept will take
	// before giving up with *StepBudgetExceededError. Zero means
	// unlimited.
	StepBudget int

	// Trace, if non-nil, receives one line per VM step (pc, opcode,
	// cursor, sp, fp) as the parser runs. This is the debug state-dump hook;
	// it has no effect on match semantics and costs nothing when nil.
	Trace io.Writer
}

// NewConfig returns the default Config: no step budget, no trace.
func NewConfig() *Config {
	return &Config{}
}
