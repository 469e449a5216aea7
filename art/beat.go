package art

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/a2aaron/BROKEN-FIELD/stackbeat"
)

// BeatPiece evaluates a stack expression once per sample of an internal
// BeatWidth×BeatHeight byte field, once per frame.
type BeatPiece struct {
	Program *stackbeat.Program
	Field   []byte
	Frame   int64
}

// NewBeatPiece wraps an existing program.
func NewBeatPiece(p *stackbeat.Program) *BeatPiece {
	return &BeatPiece{
		Program: p,
		Field:   make([]byte, BeatWidth*BeatHeight),
	}
}

// NewRandomBeatPiece wraps a fresh random program.
func NewRandomBeatPiece(rng *rand.Rand) *BeatPiece {
	return NewBeatPiece(stackbeat.RandomProgram(rng, ProgramLength))
}

// Reset rewinds the frame counter.
func (b *BeatPiece) Reset() {
	b.Frame = 0
}

// Update evaluates the program for every sample and advances the frame
// counter by speed. Samples are independent, so rows are split across
// worker goroutines; the compiled Program is shared read-only while every
// worker brings its own scratch stack.
func (b *BeatPiece) Update(speed int64, inputs Inputs) {
	t := stackbeat.I(b.Frame)
	mouseX := stackbeat.I(inputs.MouseX)
	mouseY := stackbeat.I(inputs.MouseY)
	keyX := stackbeat.I(inputs.KeyX)
	keyY := stackbeat.I(inputs.KeyY)

	workers := runtime.GOMAXPROCS(0)
	if workers > BeatHeight {
		workers = BeatHeight
	}
	rowsPerWorker := (BeatHeight + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > BeatHeight {
			endRow = BeatHeight
		}
		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			stack := make([]stackbeat.Value, 0, 32)
			for y := startRow; y < endRow; y++ {
				screenY := stackbeat.I(int64(y))
				row := b.Field[y*BeatWidth : (y+1)*BeatWidth]
				for x := range row {
					v := stackbeat.Eval(&stack, b.Program,
						t, mouseX, mouseY,
						stackbeat.I(int64(x)), screenY,
						keyX, keyY)
					row[x] = v.Byte()
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	b.Frame += speed
}

// Render scales the byte field into the image's green channel.
func (b *BeatPiece) Render(img *Image) {
	widthScale := img.Width / BeatWidth
	heightScale := img.Height / BeatHeight
	if widthScale < 1 {
		widthScale = 1
	}
	if heightScale < 1 {
		heightScale = 1
	}

	for y := 0; y < img.Height; y++ {
		sampleY := y / heightScale
		if sampleY >= BeatHeight {
			sampleY = BeatHeight - 1
		}
		for x := 0; x < img.Width; x++ {
			sampleX := x / widthScale
			if sampleX >= BeatWidth {
				sampleX = BeatWidth - 1
			}
			value := b.Field[sampleY*BeatWidth+sampleX]
			img.Set(x, y, Color{G: value})
		}
	}
}

// Mutate derives a descendant with a perturbed program.
func (b *BeatPiece) Mutate(rng *rand.Rand) *BeatPiece {
	return NewBeatPiece(stackbeat.Mutate(rng, b.Program, MutationChance))
}
