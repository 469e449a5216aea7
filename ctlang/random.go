package ctlang

import "math/rand"

// ---------------------------------------------------------------------------
// Random generation and mutation
// ---------------------------------------------------------------------------

// Instruction pools for random generation. The default pool leaves out Read
// and Write: pure tape churn tends to make better-looking pieces than ones
// that stall on input.
var (
	randomChoices   = []Instruction{Inc, Dec, MoveLeft, MoveRight, LoopStart, LoopEnd}
	randomChoicesIO = []Instruction{Inc, Dec, MoveLeft, MoveRight, LoopStart, LoopEnd, Read, Write}

	// mutationChoices are the non-structural instructions a mutated slot
	// may become. Loop brackets are never mutated, so mutation preserves
	// brace balance by construction.
	mutationChoices = []Instruction{Inc, Dec, MoveLeft, MoveRight, Read, Write}
)

// RandomProgram generates a structurally valid program of at least length
// instructions. Generation keeps drawing until both the length target is met
// and all loops are closed: a drawn LoopEnd with no open LoopStart is
// rejected, and once the target is reached only LoopEnd is emitted so the
// program converges.
func RandomProgram(rng *rand.Rand, length int) *Program {
	return randomProgram(rng, length, randomChoices)
}

// RandomProgramIO is RandomProgram drawing from all eight instructions,
// including Read and Write.
func RandomProgramIO(rng *rand.Rand, length int) *Program {
	return randomProgram(rng, length, randomChoicesIO)
}

func randomProgram(rng *rand.Rand, length int, choices []Instruction) *Program {
	instrs := make([]Instruction, 0, length+2)
	openBraces := 0

	for len(instrs) < length || openBraces != 0 {
		in := choices[rng.Intn(len(choices))]

		// No end loop without a matching start loop.
		if openBraces <= 0 && in == LoopEnd {
			continue
		}

		// Out of length: only close remaining loops.
		if len(instrs) >= length {
			in = LoopEnd
		}

		switch in {
		case LoopStart:
			openBraces++
		case LoopEnd:
			openBraces--
		}
		instrs = append(instrs, in)
	}

	for ; openBraces > 0; openBraces-- {
		instrs = append(instrs, LoopEnd)
	}

	p, err := NewProgram(instrs)
	if err != nil {
		panic("ctlang: RandomProgram generated an invalid program: " + err.Error())
	}
	return p
}

// Mutate returns a new program in which each instruction has independently
// been replaced, with probability chance, by a random non-structural
// instruction. Loop brackets are left untouched, so the result always
// revalidates.
func Mutate(rng *rand.Rand, p *Program, chance float64) *Program {
	instrs := p.Instructions()
	for i, in := range instrs {
		if in == LoopStart || in == LoopEnd {
			continue
		}
		if rng.Float64() < chance {
			instrs[i] = mutationChoices[rng.Intn(len(mutationChoices))]
		}
	}

	mutated, err := NewProgram(instrs)
	if err != nil {
		panic("ctlang: Mutate broke a valid program: " + err.Error())
	}
	return mutated
}
