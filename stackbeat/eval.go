package stackbeat

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

// Operand binding convention: for the token sequence "a b OP", b is the most
// recently pushed value. Operands therefore pop in reverse declaration
// order: pop2 pops b off the top first and returns (a, b), so subtraction is
// a - b, division a / b, and so on. Non-commutative results depend on this.

func pop2(stack *[]Value) (a, b Value) {
	s := *stack
	b = s[len(s)-1]
	a = s[len(s)-2]
	*stack = s[:len(s)-2]
	return a, b
}

func pop1(stack *[]Value) Value {
	s := *stack
	v := s[len(s)-1]
	*stack = s[:len(s)-1]
	return v
}

func push(stack *[]Value, v Value) {
	*stack = append(*stack, v)
}

// Eval executes the program against the caller-owned scratch stack and
// returns the result. The stack is cleared first and fully owned by this
// call; reusing one stack across sequential calls avoids reallocation, but
// concurrent evaluations must each bring their own. The Program itself is
// immutable and safe to share across goroutines.
//
// Evaluation is total: compile-time validation rules out stack underflow,
// and division or modulo by zero yields 0 rather than faulting. Identical
// program and inputs always produce a bit-identical result.
func Eval(stack *[]Value, p *Program, t, mouseX, mouseY, screenX, screenY, keyX, keyY Value) Value {
	*stack = (*stack)[:0]

	for _, c := range p.cmds {
		switch c.Kind {
		case CmdVar:
			switch c.Var {
			case Frame:
				push(stack, t)
			case MouseX:
				push(stack, mouseX)
			case MouseY:
				push(stack, mouseY)
			case ScreenX:
				push(stack, screenX)
			case ScreenY:
				push(stack, screenY)
			case KeyX:
				push(stack, keyX)
			case KeyY:
				push(stack, keyY)
			}
		case CmdNumF:
			push(stack, F(c.F))
		case CmdNumI, CmdHex:
			push(stack, I(c.I))

		case CmdAdd:
			a, b := pop2(stack)
			push(stack, I(a.Int()+b.Int()))
		case CmdSub:
			a, b := pop2(stack)
			push(stack, I(a.Int()-b.Int()))
		case CmdMul:
			a, b := pop2(stack)
			push(stack, I(a.Int()*b.Int()))
		case CmdDiv:
			a, b := pop2(stack)
			if b.Int() == 0 {
				push(stack, I(0))
			} else {
				push(stack, I(a.Int()/b.Int()))
			}
		case CmdMod:
			a, b := pop2(stack)
			if b.Int() == 0 {
				push(stack, I(0))
			} else {
				push(stack, I(a.Int()%b.Int()))
			}
		case CmdShl:
			a, b := pop2(stack)
			push(stack, I(a.Int()<<shiftCount(b.Int())))
		case CmdShr:
			a, b := pop2(stack)
			push(stack, I(a.Int()>>shiftCount(b.Int())))
		case CmdAnd:
			a, b := pop2(stack)
			push(stack, I(a.Int()&b.Int()))
		case CmdOrr:
			a, b := pop2(stack)
			push(stack, I(a.Int()|b.Int()))
		case CmdXor:
			a, b := pop2(stack)
			push(stack, I(a.Int()^b.Int()))

		case CmdSin:
			a := pop1(stack)
			push(stack, F(math.Sin(a.Float())))
		case CmdCos:
			a := pop1(stack)
			push(stack, F(math.Cos(a.Float())))
		case CmdTan:
			a := pop1(stack)
			push(stack, F(math.Tan(a.Float())))

		case CmdPow:
			a, b := pop2(stack)
			push(stack, F(math.Pow(a.Float(), b.Float())))
		case CmdAddF:
			a, b := pop2(stack)
			push(stack, F(a.Float()+b.Float()))
		case CmdSubF:
			a, b := pop2(stack)
			push(stack, F(a.Float()-b.Float()))
		case CmdMulF:
			a, b := pop2(stack)
			push(stack, F(a.Float()*b.Float()))
		case CmdDivF:
			a, b := pop2(stack)
			if b.Float() == 0.0 {
				push(stack, F(0.0))
			} else {
				push(stack, F(a.Float()/b.Float()))
			}
		case CmdModF:
			a, b := pop2(stack)
			if b.Float() == 0.0 {
				push(stack, F(0.0))
			} else {
				push(stack, F(math.Mod(a.Float(), b.Float())))
			}

		case CmdLt:
			a, b := pop2(stack)
			push(stack, B(a.Less(b)))
		case CmdGt:
			a, b := pop2(stack)
			push(stack, B(b.Less(a)))
		case CmdLeq:
			a, b := pop2(stack)
			push(stack, B(a.LessEq(b)))
		case CmdGeq:
			a, b := pop2(stack)
			push(stack, B(b.LessEq(a)))
		case CmdEq:
			a, b := pop2(stack)
			push(stack, B(a.Equal(b)))
		case CmdNeq:
			a, b := pop2(stack)
			push(stack, B(!a.Equal(b)))

		case CmdCond:
			cond := pop1(stack)
			elseVal := pop1(stack)
			thenVal := pop1(stack)
			if cond.Bool() {
				push(stack, thenVal)
			} else {
				push(stack, elseVal)
			}

		case CmdArr:
			if c.Size == 0 {
				// Size-zero index pushes 0 without consuming the
				// would-be index.
				push(stack, I(0))
				break
			}
			index := pop1(stack).Int()
			s := *stack
			split := len(s) - c.Size
			group := s[split:]
			size := int64(c.Size)
			// Positive modulo; % alone is a remainder and goes
			// negative for negative indices.
			index = ((index % size) + size) % size
			selected := group[index]
			*stack = s[:split]
			push(stack, selected)

		case CmdMeta, CmdComment:
			// No runtime effect.

		default:
			panic(fmt.Sprintf("stackbeat: Eval on unknown Cmd kind %d", c.Kind))
		}
	}

	return pop1(stack)
}

// shiftCount maps an arbitrary shift amount into [0, 64) the way the engine
// always has: positive modulo 64.
func shiftCount(b int64) uint {
	return uint(((b % 64) + 64) % 64)
}
