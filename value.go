package pegparse

// Reduction is a user-supplied callback that replaces a rule's (or a
// capture scope's) captured cells with a single value. It is called
// with the parser's context as its conceptual receiver and the
// captured values, in left-to-right match order, as args.
type Reduction func(context any, values []any) any

// absentValue is the sentinel pushed by ZeroOrOne/Optional in place
// of a skipped sub-match. It is distinct from nil so that a grammar
// can tell "matched and captured nil" apart from "did not match".
type absentValue struct{}

// Absent is the value ZeroOrOne pushes when its sub-program did not
// match.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// cellKind tags the variant stored in a stack cell. The VM's data
// stack is heterogeneous: it carries captured input scalars
// interleaved with the bookkeeping cells pushed by jsr/frame and the
// user values produced by ret/call/reduce. Modeling it as a closed
// tagged variant keeps that mix type-safe instead of passing `any`
// around and hoping callers check kinds before asserting.
type cellKind int

const (
	cellScalar cellKind = iota
	cellSavedPC
	cellSavedCode
	cellSavedFP
	cellUser
)

type cell struct {
	kind   cellKind
	scalar rune
	pc     int
	code   Code
	fp     int
	user   any
}

func scalarCell(r rune) cell   { return cell{kind: cellScalar, scalar: r, user: r} }
func savedPCCell(pc int) cell  { return cell{kind: cellSavedPC, pc: pc} }
func savedCodeCell(c Code) cell { return cell{kind: cellSavedCode, code: c} }
func savedFPCell(fp int) cell  { return cell{kind: cellSavedFP, fp: fp} }
func userCell(v any) cell      { return cell{kind: cellUser, user: v} }

// asUser returns the conceptual "value" carried by a cell, which is
// what capture lists and reduction callbacks observe: scalars surface
// as the matched rune, and every other cell kind surfaces the value a
// prior reduce/ret/call pushed.
func (c cell) asUser() any {
	return c.user
}
