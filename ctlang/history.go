package ctlang

// HistoryEntry is one step of an execution history: the state after the step
// and the instruction that was executed.
type HistoryEntry struct {
	State *State
	Instr Instruction
}

// ExecutionHistory runs a program from a fresh state, recording a snapshot
// after every step, until the program halts or maxSteps steps have run.
func ExecutionHistory(p *Program, input InputSource, maxSteps int) []HistoryEntry {
	history := make([]HistoryEntry, 0, maxSteps)
	state := NewState()

	for steps := 0; !state.Halted(p) && steps < maxSteps; steps++ {
		in := p.At(state.ProgramPointer)
		state.Step(p, input)
		history = append(history, HistoryEntry{State: state.Clone(), Instr: in})
	}
	return history
}

// InterestScore is a crude heuristic for how interesting a program's output
// is, used to pick which evolved programs are worth keeping. Unprintable-only
// output scores zero; uniform or very short output scores low; anything else
// scores 100.
func InterestScore(output []int8) int {
	if len(output) == 0 {
		return 0
	}

	allUnprintable := true
	allSame := true
	for _, b := range output {
		// ASCII 0..31 are control characters.
		if b < 0 || b > 31 {
			allUnprintable = false
		}
		if b != output[0] {
			allSame = false
		}
	}

	switch {
	case allUnprintable:
		return 0
	case allSame:
		return len(output) / 4
	case len(output) <= 5:
		return len(output)
	default:
		return 100
	}
}
