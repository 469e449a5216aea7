package ctlang

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Program construction and loop matching
// ---------------------------------------------------------------------------

// Program is an immutable, validated instruction sequence plus a jump table
// mapping every LoopStart index to its matching LoopEnd index and vice versa.
// Programs are built once (NewProgram, Parse, RandomProgram, Mutate) and
// shared freely afterwards.
type Program struct {
	instrs   []Instruction
	loopDict map[int]int
}

// InvalidProgramError reports malformed loop nesting: a LoopEnd with no open
// LoopStart, or LoopStarts left open at the end of the program.
type InvalidProgramError struct {
	// Index is the position of the offending instruction, or len(program)
	// when loops are left unclosed.
	Index int
	// Balance is the brace balance observed at Index.
	Balance int
}

func (e *InvalidProgramError) Error() string {
	if e.Balance < 0 {
		return fmt.Sprintf("ctlang: unmatched ']' at instruction %d", e.Index)
	}
	return fmt.Sprintf("ctlang: %d unclosed '[' at end of program", e.Balance)
}

// Validate checks that loop braces balance: the running balance over any
// prefix never goes negative and is exactly zero over the whole sequence.
func Validate(instrs []Instruction) error {
	balance := 0
	for i, in := range instrs {
		switch in {
		case LoopStart:
			balance++
		case LoopEnd:
			balance--
		}
		if balance < 0 {
			return &InvalidProgramError{Index: i, Balance: balance}
		}
	}
	if balance != 0 {
		return &InvalidProgramError{Index: len(instrs), Balance: balance}
	}
	return nil
}

// NewProgram validates instrs and builds the jump table. The instruction
// slice is copied; callers may reuse theirs.
func NewProgram(instrs []Instruction) (*Program, error) {
	if err := Validate(instrs); err != nil {
		return nil, err
	}
	own := make([]Instruction, len(instrs))
	copy(own, instrs)
	return &Program{instrs: own, loopDict: loopDict(own)}, nil
}

// loopDict matches loops in a single left-to-right scan, keeping a stack of
// pending LoopStart positions. Precondition: instrs already validated.
func loopDict(instrs []Instruction) map[int]int {
	dict := make(map[int]int)
	var pending []int
	for i, in := range instrs {
		switch in {
		case LoopStart:
			pending = append(pending, i)
		case LoopEnd:
			if len(pending) == 0 {
				panic("ctlang: loopDict on unvalidated program")
			}
			start := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			dict[start] = i
			dict[i] = start
		}
	}
	if len(pending) != 0 {
		panic("ctlang: loopDict on unvalidated program")
	}
	return dict
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.instrs)
}

// At returns the instruction at index i.
func (p *Program) At(i int) Instruction {
	return p.instrs[i]
}

// Instructions returns a copy of the instruction sequence.
func (p *Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.instrs))
	copy(out, p.instrs)
	return out
}

// MatchingLoop returns the matching bracket position for the LoopStart or
// LoopEnd at index i. Panics if i is not a loop instruction: given the
// construction-time validation that would mean a corrupted Program.
func (p *Program) MatchingLoop(i int) int {
	target, ok := p.loopDict[i]
	if !ok {
		panic(fmt.Sprintf("ctlang: no matching loop for instruction %d", i))
	}
	return target
}

// Equal reports whether two programs have identical instruction sequences.
func (p *Program) Equal(q *Program) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.instrs {
		if p.instrs[i] != q.instrs[i] {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Text form
// ---------------------------------------------------------------------------

// Parse builds a Program from its one-character-per-instruction text form.
// Characters that are not commands are skipped, so annotated or whitespace
// formatted sources parse cleanly.
func Parse(src string) (*Program, error) {
	instrs := make([]Instruction, 0, len(src))
	for _, r := range src {
		if in, ok := instructionForRune(r); ok {
			instrs = append(instrs, in)
		}
	}
	return NewProgram(instrs)
}

// String renders the program in its canonical text form.
func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.instrs))
	for _, in := range p.instrs {
		b.WriteRune(in.Rune())
	}
	return b.String()
}
