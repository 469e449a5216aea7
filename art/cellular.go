package art

import (
	"math/rand"

	"github.com/a2aaron/BROKEN-FIELD/ctlang"
)

// defaultInput is the byte stream fed to Read instructions.
const defaultInput = "Hello, world!"

// Instruction highlight colors for the tape pointer's cell border.
var instrColors = map[ctlang.Instruction]Color{
	ctlang.Inc:       {R: 0, G: 255, B: 0},
	ctlang.Dec:       {R: 255, G: 0, B: 0},
	ctlang.MoveLeft:  {R: 255, G: 128, B: 128},
	ctlang.MoveRight: {R: 128, G: 255, B: 128},
	ctlang.LoopStart: {R: 0, G: 128, B: 255},
	ctlang.LoopEnd:   {R: 255, G: 128, B: 0},
	ctlang.Read:      {R: 255, G: 255, B: 0},
	ctlang.Write:     {R: 0, G: 255, B: 255},
}

// CellularPiece runs a tape-machine program a bounded number of steps per
// frame and draws the tape as a grid of megapixels.
type CellularPiece struct {
	Program *ctlang.Program
	State   *ctlang.State
	Input   ctlang.InputSource
}

// NewCellularPiece wraps an existing program.
func NewCellularPiece(p *ctlang.Program) *CellularPiece {
	return &CellularPiece{
		Program: p,
		State:   ctlang.NewState(),
		Input:   ctlang.NewCycleString(defaultInput),
	}
}

// NewRandomCellularPiece wraps a fresh random program.
func NewRandomCellularPiece(rng *rand.Rand) *CellularPiece {
	return NewCellularPiece(ctlang.RandomProgram(rng, ProgramLength))
}

// Reset restarts execution from a zeroed tape and a fresh input stream.
func (c *CellularPiece) Reset() {
	c.State = ctlang.NewState()
	c.Input = ctlang.NewCycleString(defaultInput)
}

// Update runs up to speed steps. Loopy programs may never halt, so the step
// budget is the only thing bounding a frame.
func (c *CellularPiece) Update(speed int64) {
	if speed < 0 {
		speed = 0
	} else if speed > 2_000_000 {
		speed = 2_000_000
	}
	for i := int64(0); i < speed; i++ {
		if c.State.Halted(c.Program) {
			break
		}
		c.State.Step(c.Program, c.Input)
	}
}

// Render draws each tape cell as a PixelSize block colored from its value,
// outlining the cell under the tape pointer with the color of the current
// instruction.
func (c *CellularPiece) Render(img *Image) {
	instr := ctlang.Inc
	if !c.State.Halted(c.Program) {
		instr = c.Program.At(c.State.ProgramPointer)
	}

	megapixelWidth := img.Width / PixelSize
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			megaX := x / PixelSize
			megaY := y / PixelSize
			i := megaY*megapixelWidth + megaX

			subX := x - megaX*PixelSize
			subY := y - megaY*PixelSize
			onEdge := subX == 0 || subY == 0 || subX == PixelSize-1 || subY == PixelSize-1

			if i == c.State.MemoryPointer && onEdge {
				img.Set(x, y, instrColors[instr])
				continue
			}

			var value uint8
			if i < len(c.State.Memory) {
				value = uint8(c.State.Memory[i])
			}
			img.Set(x, y, Color{
				R: value * 63,
				G: value * 65,
				B: value * 67,
			})
		}
	}
}

// Mutate derives a descendant with a perturbed program.
func (c *CellularPiece) Mutate(rng *rand.Rand) *CellularPiece {
	return NewCellularPiece(ctlang.Mutate(rng, c.Program, MutationChance))
}
