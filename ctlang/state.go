package ctlang

// Default execution parameters. The 256-cell wrapping tape keeps random
// programs bounded; GrowRightward is available for callers that want an
// unbounded rightward tape instead.
const (
	InitialMemory      = 256
	ExtendMemoryAmount = 64
)

// MemoryBehavior selects the tape-pointer movement policy.
type MemoryBehavior struct {
	// Kind is WrappingMemory or GrowRightwardMemory.
	Kind MemoryKind
	// Modulo is the ring size under WrappingMemory; unused otherwise.
	Modulo int
}

// MemoryKind enumerates tape-pointer policies.
type MemoryKind byte

const (
	// WrappingMemory wraps the pointer within a fixed-size ring.
	WrappingMemory MemoryKind = iota
	// GrowRightwardMemory saturates at zero on the left and extends the
	// tape in ExtendMemoryAmount chunks on the right.
	GrowRightwardMemory
)

// Wrapping returns the ring-tape policy with the given modulus.
func Wrapping(modulo int) MemoryBehavior {
	return MemoryBehavior{Kind: WrappingMemory, Modulo: modulo}
}

// GrowRightward returns the growable-tape policy.
func GrowRightward() MemoryBehavior {
	return MemoryBehavior{Kind: GrowRightwardMemory}
}

// InputSource produces bytes for the Read instruction. Next reports ok=false
// when exhausted; the stepper then writes 0 to the current cell.
type InputSource interface {
	Next() (int8, bool)
}

// CycleString is an InputSource that repeats the bytes of a string forever.
// An empty CycleString is permanently exhausted.
type CycleString struct {
	s   string
	pos int
}

// NewCycleString returns an input source cycling over s.
func NewCycleString(s string) *CycleString {
	return &CycleString{s: s}
}

func (c *CycleString) Next() (int8, bool) {
	if len(c.s) == 0 {
		return 0, false
	}
	b := c.s[c.pos]
	c.pos = (c.pos + 1) % len(c.s)
	return int8(b), true
}

// ---------------------------------------------------------------------------
// Run state and stepper
// ---------------------------------------------------------------------------

// State is the mutable run state of one execution: program counter, tape
// pointer, tape, and output buffer. A State owns its tape and output
// exclusively; create a fresh one per run.
type State struct {
	ProgramPointer int
	MemoryPointer  int
	Memory         []int8
	Behavior       MemoryBehavior
	Output         []int8
}

// NewState returns a fresh zeroed state with the default wrapping tape.
func NewState() *State {
	return NewStateWith(Wrapping(InitialMemory))
}

// NewStateWith returns a fresh zeroed state with the given tape policy.
// A wrapping tape is allocated to cover its full ring, so the pointer can
// never wrap past the end of memory. Panics on a non-positive modulus.
func NewStateWith(behavior MemoryBehavior) *State {
	size := InitialMemory
	if behavior.Kind == WrappingMemory {
		if behavior.Modulo <= 0 {
			panic("ctlang: Wrapping modulo must be positive")
		}
		if behavior.Modulo > size {
			size = behavior.Modulo
		}
	}
	return &State{
		Memory:   make([]int8, size),
		Behavior: behavior,
		Output:   make([]int8, 0, 100),
	}
}

// Halted reports whether the program counter has run off the end of the
// program. The stepper never self-limits; callers running loopy programs
// must impose their own step budget.
func (s *State) Halted(p *Program) bool {
	return s.ProgramPointer >= p.Len()
}

// Step executes exactly one instruction and advances the program counter.
// When a loop instruction jumps, execution resumes one past the jump target.
// Panics if the state is already halted.
func (s *State) Step(p *Program, input InputSource) {
	if s.Halted(p) {
		panic("ctlang: Step on halted state")
	}

	switch p.At(s.ProgramPointer) {
	case Inc:
		s.Memory[s.MemoryPointer]++ // int8 wraps
	case Dec:
		s.Memory[s.MemoryPointer]--
	case MoveLeft:
		switch s.Behavior.Kind {
		case WrappingMemory:
			s.MemoryPointer = wrappingAdd(s.MemoryPointer, -1, s.Behavior.Modulo)
		case GrowRightwardMemory:
			if s.MemoryPointer > 0 {
				s.MemoryPointer--
			}
		}
	case MoveRight:
		switch s.Behavior.Kind {
		case WrappingMemory:
			s.MemoryPointer = wrappingAdd(s.MemoryPointer, 1, s.Behavior.Modulo)
		case GrowRightwardMemory:
			s.MemoryPointer++
			if s.MemoryPointer >= len(s.Memory) {
				s.Memory = append(s.Memory, make([]int8, ExtendMemoryAmount)...)
			}
		}
	case LoopStart:
		if s.Memory[s.MemoryPointer] == 0 {
			s.ProgramPointer = p.MatchingLoop(s.ProgramPointer)
		}
	case LoopEnd:
		if s.Memory[s.MemoryPointer] != 0 {
			s.ProgramPointer = p.MatchingLoop(s.ProgramPointer)
		}
	case Read:
		if b, ok := input.Next(); ok {
			s.Memory[s.MemoryPointer] = b
		} else {
			s.Memory[s.MemoryPointer] = 0
		}
	case Write:
		s.Output = append(s.Output, s.Memory[s.MemoryPointer])
	}
	s.ProgramPointer++
}

// wrappingAdd computes (a+b) mod modulo with correct negative wraparound.
func wrappingAdd(a, b, modulo int) int {
	x := (a + b) % modulo
	if x < 0 {
		x += modulo
	}
	return x
}

// Clone returns a deep copy of the state, used for execution histories.
func (s *State) Clone() *State {
	c := &State{
		ProgramPointer: s.ProgramPointer,
		MemoryPointer:  s.MemoryPointer,
		Memory:         make([]int8, len(s.Memory)),
		Behavior:       s.Behavior,
		Output:         make([]int8, len(s.Output)),
	}
	copy(c.Memory, s.Memory)
	copy(c.Output, s.Output)
	return c
}
