package stackbeat

import "fmt"

// ---------------------------------------------------------------------------
// Compilation: static stack-depth validation plus metadata collection
// ---------------------------------------------------------------------------

// Program is an immutable, validated Cmd sequence plus the metadata collected
// from its Meta annotations. A compiled Program always leaves exactly one
// value on the stack, for any inputs.
type Program struct {
	cmds []Cmd
	meta map[string][]string
}

// UnderflowedStackError reports the first instruction that would pop past
// the bottom of the stack. StackSize is the depth before that instruction
// runs.
type UnderflowedStackError struct {
	Index     int
	StackSize int
}

func (e *UnderflowedStackError) Error() string {
	return fmt.Sprintf(
		"stackbeat: attempt to pop beyond stack size at instruction %d (stack size %d)",
		e.Index, e.StackSize)
}

// EmptyProgramError reports a program that passes every per-instruction
// check but nets to nothing on the stack, such as one made only of comments.
type EmptyProgramError struct{}

func (e *EmptyProgramError) Error() string {
	return "stackbeat: program produces no value"
}

// Compile validates cmds and collects metadata. The depth check applies each
// instruction's static stack effect and fails the moment the depth would
// drop to zero or below; the check is against depth+effect <= 0, so an
// instruction is also required to leave its own operand behind. A program
// whose final depth is zero fails with EmptyProgramError.
func Compile(cmds []Cmd) (*Program, error) {
	meta := make(map[string][]string)
	for _, c := range cmds {
		if c.Kind == CmdMeta {
			meta[c.Key] = append(meta[c.Key], c.Val)
		}
	}

	depth := 0
	for i, c := range cmds {
		effect, ok := c.stackEffect()
		if !ok {
			continue
		}
		if depth+effect <= 0 {
			return nil, &UnderflowedStackError{Index: i, StackSize: depth}
		}
		depth += effect
	}
	if depth == 0 {
		return nil, &EmptyProgramError{}
	}

	own := make([]Cmd, len(cmds))
	copy(own, cmds)
	return &Program{cmds: own, meta: meta}, nil
}

// MustCompile is Compile for programs known to be valid, such as test
// fixtures. Panics on error.
func MustCompile(cmds []Cmd) *Program {
	p, err := Compile(cmds)
	if err != nil {
		panic(err)
	}
	return p
}

// Cmds returns a copy of the instruction sequence.
func (p *Program) Cmds() []Cmd {
	out := make([]Cmd, len(p.cmds))
	copy(out, p.cmds)
	return out
}

// Len returns the number of instructions, annotations included.
func (p *Program) Len() int {
	return len(p.cmds)
}

// Meta returns the last value recorded for key, or ok=false if the key never
// appeared.
func (p *Program) Meta(key string) (string, bool) {
	vals := p.meta[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllMeta returns every value recorded for key, in program order.
func (p *Program) AllMeta(key string) []string {
	vals := p.meta[key]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// String renders the program in its one-line token form.
func (p *Program) String() string {
	return FormatBeat(p.cmds)
}
