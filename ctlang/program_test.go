package ctlang

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Validation tests
// ---------------------------------------------------------------------------

func TestValidateBalanced(t *testing.T) {
	cases := []string{
		"",
		"+-><,.",
		"[]",
		"[[][]]",
		"+[-]",
		"[->+<]",
	}
	for _, src := range cases {
		if _, err := Parse(src); err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", src, err)
		}
	}
}

func TestValidateUnbalanced(t *testing.T) {
	cases := []string{
		"]",
		"][",
		"[",
		"[[]",
		"+]+[",
	}
	for _, src := range cases {
		_, err := Parse(src)
		if err == nil {
			t.Errorf("Parse(%q) error = nil, want InvalidProgramError", src)
			continue
		}
		var invalid *InvalidProgramError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q) error = %T, want *InvalidProgramError", src, err)
		}
	}
}

func TestValidateNeverNegativePrefix(t *testing.T) {
	// "][" balances to zero overall but dips negative at index 0.
	_, err := Parse("][")
	var invalid *InvalidProgramError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse(\"][\") error = %v, want *InvalidProgramError", err)
	}
	if invalid.Index != 0 {
		t.Errorf("error index = %d, want 0", invalid.Index)
	}
	if invalid.Balance >= 0 {
		t.Errorf("error balance = %d, want negative", invalid.Balance)
	}
}

// ---------------------------------------------------------------------------
// Jump table tests
// ---------------------------------------------------------------------------

func TestMatchingLoop(t *testing.T) {
	p, err := Parse("+[>[-]<]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	pairs := [][2]int{{1, 7}, {3, 5}}
	for _, pair := range pairs {
		if got := p.MatchingLoop(pair[0]); got != pair[1] {
			t.Errorf("MatchingLoop(%d) = %d, want %d", pair[0], got, pair[1])
		}
		if got := p.MatchingLoop(pair[1]); got != pair[0] {
			t.Errorf("MatchingLoop(%d) = %d, want %d", pair[1], got, pair[0])
		}
	}
}

func TestMatchingLoopPanicsOnNonLoop(t *testing.T) {
	p, err := Parse("+[-]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("MatchingLoop(0) on '+' did not panic")
		}
	}()
	p.MatchingLoop(0)
}

// ---------------------------------------------------------------------------
// Text round-trip
// ---------------------------------------------------------------------------

func TestParseSkipsNonCommands(t *testing.T) {
	p, err := Parse("+ hello + [world] .")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := p.String(); got != "++[]." {
		t.Errorf("String() = %q, want %q", got, "++[].")
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"+-><[],.",
		"+[-]",
		"[->+<]>.",
		"",
	}
	for _, src := range cases {
		p, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", src, err)
		}
		q, err := Parse(p.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", p.String(), err)
		}
		if !p.Equal(q) {
			t.Errorf("round trip of %q = %q", src, q.String())
		}
	}
}

func TestProgramImmutableInstructions(t *testing.T) {
	p, err := Parse("+-")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	instrs := p.Instructions()
	instrs[0] = Dec
	if p.At(0) != Inc {
		t.Error("mutating Instructions() copy changed the program")
	}
}
