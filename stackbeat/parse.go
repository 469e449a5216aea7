package stackbeat

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Text form: whitespace-separated tokens
// ---------------------------------------------------------------------------

// BadArrayError reports a malformed array-index token such as "[x".
type BadArrayError struct {
	Token string
	Index int
}

func (e *BadArrayError) Error() string {
	return fmt.Sprintf("stackbeat: bad array op %q at token %d", e.Token, e.Index)
}

// UnknownTokenError reports a token that matched no instruction form.
type UnknownTokenError struct {
	Token string
	Index int
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("stackbeat: unknown token %q at token %d", e.Token, e.Index)
}

var tokenOps = map[string]CmdKind{
	"+":   CmdAdd,
	"-":   CmdSub,
	"*":   CmdMul,
	"/":   CmdDiv,
	"%":   CmdMod,
	"<<":  CmdShl,
	">>":  CmdShr,
	"&":   CmdAnd,
	"|":   CmdOrr,
	"^":   CmdXor,
	"sin": CmdSin,
	"cos": CmdCos,
	"tan": CmdTan,
	"pow": CmdPow,
	"+.":  CmdAddF,
	"-.":  CmdSubF,
	"*.":  CmdMulF,
	"/.":  CmdDivF,
	"%.":  CmdModF,
	"<":   CmdLt,
	">":   CmdGt,
	"<=":  CmdLeq,
	">=":  CmdGeq,
	"==":  CmdEq,
	"!=":  CmdNeq,
	"?":   CmdCond,
}

var tokenVars = map[string]VarType{
	"t":  Frame,
	"mx": MouseX,
	"my": MouseY,
	"sx": ScreenX,
	"sy": ScreenY,
	"kx": KeyX,
	"ky": KeyY,
}

// ParseBeat tokenizes a program on whitespace and maps each token to a Cmd.
// Errors carry the offending token text and its position.
func ParseBeat(text string) ([]Cmd, error) {
	fields := strings.Fields(text)
	cmds := make([]Cmd, 0, len(fields))
	for i, tok := range fields {
		cmd, err := parseToken(tok, i)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func parseToken(tok string, i int) (Cmd, error) {
	if v, ok := tokenVars[tok]; ok {
		return Var(v), nil
	}
	if kind, ok := tokenOps[tok]; ok {
		return Op(kind), nil
	}

	switch {
	case strings.HasPrefix(tok, "["):
		size, err := strconv.Atoi(tok[1:])
		if err != nil || size < 0 {
			return Cmd{}, &BadArrayError{Token: tok, Index: i}
		}
		return Arr(size), nil

	// "!=" is claimed by the operator table above, so a '!' prefix here
	// is always a metadata token.
	case strings.HasPrefix(tok, "!") && strings.Contains(tok, ":"):
		// Anything after a second colon is discarded.
		parts := strings.SplitN(tok[1:], ":", 3)
		return Meta(parts[0], parts[1]), nil

	case strings.HasPrefix(tok, "#"):
		return Comment(tok[1:]), nil

	case strings.HasPrefix(tok, "0x"):
		n, err := strconv.ParseInt(tok[2:], 16, 64)
		if err != nil {
			return Cmd{}, &UnknownTokenError{Token: tok, Index: i}
		}
		return Hex(n), nil

	case strings.Contains(tok, "."):
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Cmd{}, &UnknownTokenError{Token: tok, Index: i}
		}
		return NumF(f), nil

	default:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Cmd{}, &UnknownTokenError{Token: tok, Index: i}
		}
		return NumI(n), nil
	}
}

// FormatBeat renders a Cmd sequence as a single line of space-separated
// tokens, the inverse of ParseBeat.
func FormatBeat(cmds []Cmd) string {
	toks := make([]string, len(cmds))
	for i, c := range cmds {
		toks[i] = c.String()
	}
	return strings.Join(toks, " ")
}
