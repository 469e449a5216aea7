// Package ctlang implements the cellular-tape language: an eight-instruction
// tape machine in the Brainfuck family, used as one of the two program
// families the art engine evolves.
package ctlang

// Instruction is a single tape-machine instruction. Instructions carry no
// operands; loop targets are resolved once at Program construction.
type Instruction byte

const (
	Inc       Instruction = iota // +  increment cell at pointer
	Dec                          // -  decrement cell at pointer
	MoveLeft                     // <  move pointer left
	MoveRight                    // >  move pointer right
	LoopStart                    // [  jump past matching ] if cell is zero
	LoopEnd                      // ]  jump back to matching [ if cell is nonzero
	Read                         // ,  pull one byte from the input source
	Write                        // .  append cell to the output buffer
)

var instructionRunes = [...]rune{
	Inc:       '+',
	Dec:       '-',
	MoveLeft:  '<',
	MoveRight: '>',
	LoopStart: '[',
	LoopEnd:   ']',
	Read:      ',',
	Write:     '.',
}

// Rune returns the single-character form of the instruction.
func (in Instruction) Rune() rune {
	return instructionRunes[in]
}

func (in Instruction) String() string {
	return string(in.Rune())
}

// instructionForRune maps a source character to an instruction. Characters
// that are not commands return ok=false and are skipped by Parse.
func instructionForRune(r rune) (Instruction, bool) {
	switch r {
	case '+':
		return Inc, true
	case '-':
		return Dec, true
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	case ',':
		return Read, true
	case '.':
		return Write, true
	default:
		return 0, false
	}
}
