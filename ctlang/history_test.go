package ctlang

import "testing"

func TestExecutionHistoryRecordsEveryStep(t *testing.T) {
	p := mustParse(t, "+++.")
	history := ExecutionHistory(p, emptyInput{}, 100)

	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Instr != Inc {
		t.Errorf("history[0].Instr = %v, want +", history[0].Instr)
	}
	if history[3].Instr != Write {
		t.Errorf("history[3].Instr = %v, want .", history[3].Instr)
	}
	// Snapshots are deep copies: the first one still shows cell value 1.
	if history[0].State.Memory[0] != 1 {
		t.Errorf("history[0] memory[0] = %d, want 1", history[0].State.Memory[0])
	}
	if history[3].State.Memory[0] != 3 {
		t.Errorf("history[3] memory[0] = %d, want 3", history[3].State.Memory[0])
	}
}

func TestExecutionHistoryRespectsBudget(t *testing.T) {
	// "+[]" never halts; the budget must stop it.
	p := mustParse(t, "+[]")
	history := ExecutionHistory(p, emptyInput{}, 50)
	if len(history) != 50 {
		t.Errorf("history length = %d, want 50", len(history))
	}
}

func TestInterestScore(t *testing.T) {
	cases := []struct {
		name   string
		output []int8
		want   int
	}{
		{"empty", nil, 0},
		{"all unprintable", []int8{0, 5, 31}, 0},
		{"all same", []int8{65, 65, 65, 65, 65, 65, 65, 65}, 2},
		{"short varied", []int8{65, 66}, 2},
		{"long varied", []int8{72, 101, 108, 108, 111, 33}, 100},
	}
	for _, c := range cases {
		if got := InterestScore(c.output); got != c.want {
			t.Errorf("%s: InterestScore(%v) = %d, want %d", c.name, c.output, got, c.want)
		}
	}
}
