package stackbeat

import (
	"fmt"
	"math/rand"
)

// ---------------------------------------------------------------------------
// Random generation and mutation
// ---------------------------------------------------------------------------

// Operator families for generation and family-preserving mutation.
var (
	varChoices = []VarType{Frame, MouseX, MouseY, ScreenX, ScreenY, KeyX, KeyY}

	intOpChoices = []CmdKind{
		CmdAdd, CmdSub, CmdMul, CmdDiv, CmdMod,
		CmdShl, CmdShr, CmdAnd, CmdOrr, CmdXor,
	}
	trigChoices    = []CmdKind{CmdSin, CmdCos, CmdTan}
	floatOpChoices = []CmdKind{CmdPow, CmdAddF, CmdSubF, CmdMulF, CmdDivF, CmdModF}
	compareChoices = []CmdKind{CmdLt, CmdGt, CmdLeq, CmdGeq, CmdEq, CmdNeq}
)

// RandomProgram generates a valid random program of at least length
// instructions, drawing only from the variable and integer-operator
// families. Depth is tracked while drawing: an operator is rejected while
// fewer than two values are on the stack, and once the length target is met
// only depth-reducing draws are accepted until the depth converges to one.
func RandomProgram(rng *rand.Rand, length int) *Program {
	cmds := make([]Cmd, 0, length+2)
	depth := 0

	for len(cmds) < length || depth != 1 {
		if rng.Intn(2) == 0 && depth >= 2 {
			cmds = append(cmds, Op(intOpChoices[rng.Intn(len(intOpChoices))]))
			depth--
			continue
		}
		// Past the length target only an empty stack still needs a push;
		// one variable brings the depth to one and the loop exits.
		if len(cmds) >= length && depth >= 1 {
			continue
		}
		cmds = append(cmds, Var(varChoices[rng.Intn(len(varChoices))]))
		depth++
	}

	p, err := Compile(cmds)
	if err != nil {
		panic("stackbeat: RandomProgram generated an invalid program: " + err.Error())
	}
	return p
}

// Mutate returns a new program in which each instruction has independently
// been replaced, with probability chance, by a random instruction from its
// own operator family. Literals are left as they are. Cond, Arr, Meta and
// Comment never come out of RandomProgram, so a driver asking to mutate one
// has corrupted its own lineage; that panics rather than erroring.
func Mutate(rng *rand.Rand, p *Program, chance float64) *Program {
	cmds := p.Cmds()
	for i, c := range cmds {
		switch c.Kind {
		case CmdCond, CmdArr, CmdMeta, CmdComment:
			panic(fmt.Sprintf("stackbeat: Mutate on non-mutable Cmd kind %d", c.Kind))
		}
		if rng.Float64() >= chance {
			continue
		}
		switch c.Kind {
		case CmdVar:
			cmds[i] = Var(varChoices[rng.Intn(len(varChoices))])
		case CmdAdd, CmdSub, CmdMul, CmdDiv, CmdMod,
			CmdShl, CmdShr, CmdAnd, CmdOrr, CmdXor:
			cmds[i] = Op(intOpChoices[rng.Intn(len(intOpChoices))])
		case CmdSin, CmdCos, CmdTan:
			cmds[i] = Op(trigChoices[rng.Intn(len(trigChoices))])
		case CmdPow, CmdAddF, CmdSubF, CmdMulF, CmdDivF, CmdModF:
			cmds[i] = Op(floatOpChoices[rng.Intn(len(floatOpChoices))])
		case CmdLt, CmdGt, CmdLeq, CmdGeq, CmdEq, CmdNeq:
			cmds[i] = Op(compareChoices[rng.Intn(len(compareChoices))])
		case CmdNumF, CmdNumI, CmdHex:
			// Literals keep their values.
		}
	}

	mutated, err := Compile(cmds)
	if err != nil {
		panic("stackbeat: Mutate broke a valid program: " + err.Error())
	}
	return mutated
}
