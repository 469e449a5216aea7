package stackbeat

import (
	"fmt"
	"strconv"
	"strings"
)

// VarType identifies one of the seven per-sample inputs.
type VarType byte

const (
	Frame VarType = iota // t   frame counter
	MouseX
	MouseY
	ScreenX
	ScreenY
	KeyX
	KeyY
)

var varTokens = [...]string{
	Frame:   "t",
	MouseX:  "mx",
	MouseY:  "my",
	ScreenX: "sx",
	ScreenY: "sy",
	KeyX:    "kx",
	KeyY:    "ky",
}

// CmdKind discriminates Cmd variants.
type CmdKind byte

const (
	CmdVar CmdKind = iota
	CmdNumF
	CmdNumI
	CmdHex

	// Binary integer ops: wrapping arithmetic, div/mod by zero yields 0.
	CmdAdd
	CmdSub
	CmdMul
	CmdDiv
	CmdMod
	CmdShl
	CmdShr
	CmdAnd
	CmdOrr
	CmdXor

	// Unary trig ops on floats.
	CmdSin
	CmdCos
	CmdTan

	// Binary float ops: div/mod by zero yields 0.0.
	CmdPow
	CmdAddF
	CmdSubF
	CmdMulF
	CmdDivF
	CmdModF

	// Comparisons on generic Values.
	CmdLt
	CmdGt
	CmdLeq
	CmdGeq
	CmdEq
	CmdNeq

	// Ternary select and fixed-size array index.
	CmdCond
	CmdArr

	// Zero-runtime-effect annotations.
	CmdMeta
	CmdComment
)

// Cmd is a single expression-machine instruction. Only the fields relevant
// to Kind are meaningful.
type Cmd struct {
	Kind CmdKind
	Var  VarType // CmdVar
	F    float64 // CmdNumF
	I    int64   // CmdNumI, CmdHex
	Size int     // CmdArr
	Key  string  // CmdMeta
	Val  string  // CmdMeta
	Text string  // CmdComment
}

// Constructors for the payload-carrying variants.

func Var(v VarType) Cmd        { return Cmd{Kind: CmdVar, Var: v} }
func NumF(f float64) Cmd       { return Cmd{Kind: CmdNumF, F: f} }
func NumI(i int64) Cmd         { return Cmd{Kind: CmdNumI, I: i} }
func Hex(i int64) Cmd          { return Cmd{Kind: CmdHex, I: i} }
func Arr(size int) Cmd         { return Cmd{Kind: CmdArr, Size: size} }
func Meta(key, val string) Cmd { return Cmd{Kind: CmdMeta, Key: key, Val: val} }
func Comment(text string) Cmd  { return Cmd{Kind: CmdComment, Text: text} }

// Op returns a payload-free Cmd of the given kind.
func Op(kind CmdKind) Cmd { return Cmd{Kind: kind} }

var opTokens = map[CmdKind]string{
	CmdAdd:  "+",
	CmdSub:  "-",
	CmdMul:  "*",
	CmdDiv:  "/",
	CmdMod:  "%",
	CmdShl:  "<<",
	CmdShr:  ">>",
	CmdAnd:  "&",
	CmdOrr:  "|",
	CmdXor:  "^",
	CmdSin:  "sin",
	CmdCos:  "cos",
	CmdTan:  "tan",
	CmdPow:  "pow",
	CmdAddF: "+.",
	CmdSubF: "-.",
	CmdMulF: "*.",
	CmdDivF: "/.",
	CmdModF: "%.",
	CmdLt:   "<",
	CmdGt:   ">",
	CmdLeq:  "<=",
	CmdGeq:  ">=",
	CmdEq:   "==",
	CmdNeq:  "!=",
	CmdCond: "?",
}

// String renders the Cmd in its token form; FormatBeat joins these with
// spaces to serialize a whole program.
func (c Cmd) String() string {
	switch c.Kind {
	case CmdVar:
		return varTokens[c.Var]
	case CmdNumF:
		// Floats always serialize with a decimal point so they parse
		// back as floats: 5 prints as 5.0.
		buf := strconv.FormatFloat(c.F, 'f', -1, 64)
		if !strings.Contains(buf, ".") {
			buf += ".0"
		}
		return buf
	case CmdNumI:
		return fmt.Sprintf("%d", c.I)
	case CmdHex:
		return fmt.Sprintf("0x%X", c.I)
	case CmdArr:
		return fmt.Sprintf("[%d", c.Size)
	case CmdMeta:
		return fmt.Sprintf("!%s:%s", c.Key, c.Val)
	case CmdComment:
		return "#" + c.Text
	default:
		if tok, ok := opTokens[c.Kind]; ok {
			return tok
		}
		panic(fmt.Sprintf("stackbeat: String on unknown Cmd kind %d", c.Kind))
	}
}

// stackEffect is the net stack-depth change of the instruction, used by the
// compile-time depth check. Meta and Comment report ok=false: they are
// skipped entirely, not treated as zero-effect.
func (c Cmd) stackEffect() (effect int, ok bool) {
	switch c.Kind {
	case CmdVar, CmdNumF, CmdNumI, CmdHex:
		return 1, true
	case CmdMeta, CmdComment:
		return 0, false
	case CmdSin, CmdCos, CmdTan:
		return 0, true
	case CmdArr:
		return -c.Size, true
	case CmdCond:
		return -2, true
	default:
		// Every binary op pops two and pushes one.
		return -1, true
	}
}
