package stackbeat

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTokens(t *testing.T) {
	cases := []struct {
		text string
		want []Cmd
	}{
		{"t", []Cmd{Var(Frame)}},
		{"mx my sx sy kx ky", []Cmd{
			Var(MouseX), Var(MouseY), Var(ScreenX), Var(ScreenY), Var(KeyX), Var(KeyY),
		}},
		{"+ - * / %", []Cmd{Op(CmdAdd), Op(CmdSub), Op(CmdMul), Op(CmdDiv), Op(CmdMod)}},
		{"<< >> & | ^", []Cmd{Op(CmdShl), Op(CmdShr), Op(CmdAnd), Op(CmdOrr), Op(CmdXor)}},
		{"sin cos tan pow", []Cmd{Op(CmdSin), Op(CmdCos), Op(CmdTan), Op(CmdPow)}},
		{"+. -. *. /. %.", []Cmd{Op(CmdAddF), Op(CmdSubF), Op(CmdMulF), Op(CmdDivF), Op(CmdModF)}},
		{"< > <= >= == !=", []Cmd{Op(CmdLt), Op(CmdGt), Op(CmdLeq), Op(CmdGeq), Op(CmdEq), Op(CmdNeq)}},
		{"?", []Cmd{Op(CmdCond)}},
		{"[3", []Cmd{Arr(3)}},
		{"[0", []Cmd{Arr(0)}},
		{"!name:spiral", []Cmd{Meta("name", "spiral")}},
		// A second colon ends the value; the rest of the token is dropped.
		{"!tempo:120:bpm", []Cmd{Meta("tempo", "120")}},
		{"#note", []Cmd{Comment("note")}},
		{"42 -17", []Cmd{NumI(42), NumI(-17)}},
		{"0xFF 0x10", []Cmd{Hex(255), Hex(16)}},
		{"3.5 5.0", []Cmd{NumF(3.5), NumF(5.0)}},
	}
	for _, c := range cases {
		got, err := ParseBeat(c.text)
		if err != nil {
			t.Errorf("ParseBeat(%q) error = %v", c.text, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseBeat(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestParseUnknownToken(t *testing.T) {
	_, err := ParseBeat("t wobble +")
	var unknown *UnknownTokenError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownTokenError", err)
	}
	if unknown.Token != "wobble" || unknown.Index != 1 {
		t.Errorf("error = {%q, %d}, want {\"wobble\", 1}", unknown.Token, unknown.Index)
	}
}

func TestParseBadArray(t *testing.T) {
	_, err := ParseBeat("t t [x")
	var bad *BadArrayError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *BadArrayError", err)
	}
	if bad.Token != "[x" || bad.Index != 2 {
		t.Errorf("error = {%q, %d}, want {\"[x\", 2}", bad.Token, bad.Index)
	}
}

func TestFormatBeat(t *testing.T) {
	cmds := []Cmd{Var(Frame), NumI(2), Op(CmdMod)}
	if got := FormatBeat(cmds); got != "t 2 %" {
		t.Errorf("FormatBeat = %q, want %q", got, "t 2 %")
	}
}

func TestFormatFloatAlwaysHasPoint(t *testing.T) {
	// A float literal that happens to be integral keeps a decimal point
	// so it parses back as a float.
	if got := NumF(5).String(); got != "5.0" {
		t.Errorf("NumF(5).String() = %q, want %q", got, "5.0")
	}
	if got := NumF(2.5).String(); got != "2.5" {
		t.Errorf("NumF(2.5).String() = %q, want %q", got, "2.5")
	}
}

func TestFormatHex(t *testing.T) {
	if got := Hex(255).String(); got != "0xFF" {
		t.Errorf("Hex(255).String() = %q, want %q", got, "0xFF")
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"t 2 %",
		"t sx ^ sy & 0xFF %",
		"mx my *. sin",
		"1 2 3 4 [3",
		"!name:waves #swirly t",
		"t 1 2 ? kx ky +",
		"5.0 0.0 /.",
	}
	for _, text := range cases {
		cmds, err := ParseBeat(text)
		if err != nil {
			t.Fatalf("ParseBeat(%q) failed: %v", text, err)
		}
		formatted := FormatBeat(cmds)
		reparsed, err := ParseBeat(formatted)
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", formatted, err)
		}
		if !reflect.DeepEqual(cmds, reparsed) {
			t.Errorf("round trip of %q: %v != %v", text, cmds, reparsed)
		}
	}
}
