package art

import (
	"fmt"
	"math/rand"
)

// Tunables shared by the piece implementations.
const (
	// Internal sample resolution of a beat piece.
	BeatWidth  = 512
	BeatHeight = 512

	// Cellular pieces draw each tape cell as a PixelSize×PixelSize block.
	PixelSize = 32

	// Evolution defaults: about three mutations per descendant.
	ProgramLength  = 20
	MutationChance = 3.0 / ProgramLength
)

// Kind discriminates the fixed set of piece variants.
type Kind byte

const (
	KindCellular Kind = iota
	KindBeat
	KindMandelbrot
)

func (k Kind) String() string {
	switch k {
	case KindCellular:
		return "cellular"
	case KindBeat:
		return "beat"
	case KindMandelbrot:
		return "mandelbrot"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Piece is a closed tagged variant over the piece kinds. Exactly one of the
// variant fields is non-nil, selected by Kind; every method switches on Kind
// exhaustively. The variant set is fixed, so there is no open interface to
// implement.
type Piece struct {
	Kind       Kind
	Cellular   *CellularPiece
	Beat       *BeatPiece
	Mandelbrot *MandelbrotPiece
}

// Reset rewinds the piece to its initial state.
func (p *Piece) Reset() {
	switch p.Kind {
	case KindCellular:
		p.Cellular.Reset()
	case KindBeat:
		p.Beat.Reset()
	case KindMandelbrot:
		p.Mandelbrot.Reset()
	default:
		panic("art: Reset on unknown piece kind")
	}
}

// Update advances the piece by one frame. speed scales how much internal
// time passes.
func (p *Piece) Update(speed int64, inputs Inputs) {
	switch p.Kind {
	case KindCellular:
		p.Cellular.Update(speed)
	case KindBeat:
		p.Beat.Update(speed, inputs)
	case KindMandelbrot:
		// Static piece.
	default:
		panic("art: Update on unknown piece kind")
	}
}

// Render draws the current state into img.
func (p *Piece) Render(img *Image) {
	switch p.Kind {
	case KindCellular:
		p.Cellular.Render(img)
	case KindBeat:
		p.Beat.Render(img)
	case KindMandelbrot:
		p.Mandelbrot.Render(img)
	default:
		panic("art: Render on unknown piece kind")
	}
}

// Mutate produces a descendant piece: a similar but different program of the
// same kind.
func (p *Piece) Mutate(rng *rand.Rand) *Piece {
	switch p.Kind {
	case KindCellular:
		return &Piece{Kind: KindCellular, Cellular: p.Cellular.Mutate(rng)}
	case KindBeat:
		return &Piece{Kind: KindBeat, Beat: p.Beat.Mutate(rng)}
	case KindMandelbrot:
		return &Piece{Kind: KindMandelbrot, Mandelbrot: NewMandelbrotPiece()}
	default:
		panic("art: Mutate on unknown piece kind")
	}
}

// Source returns the textual program behind the piece, empty for pieces
// without one.
func (p *Piece) Source() string {
	switch p.Kind {
	case KindCellular:
		return p.Cellular.Program.String()
	case KindBeat:
		return p.Beat.Program.String()
	case KindMandelbrot:
		return ""
	default:
		panic("art: Source on unknown piece kind")
	}
}
