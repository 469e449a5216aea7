// field - headless evolution driver for the BROKEN-FIELD art engine
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/a2aaron/BROKEN-FIELD/art"
	"github.com/a2aaron/BROKEN-FIELD/ctlang"
	"github.com/a2aaron/BROKEN-FIELD/gallery"
	"github.com/a2aaron/BROKEN-FIELD/manifest"
)

var log = commonlog.GetLogger("field")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	beatMode := flag.Bool("beat", false, "Evolve a stack-beat lineage instead of cellular programs")
	numPrograms := flag.Int("n", 100, "Number of random programs (cellular mode)")
	generations := flag.Int("generations", 10, "Generations to evolve (beat mode)")
	snapshot := flag.String("snapshot", "", "Write a CBOR lineage snapshot to this path (beat mode)")
	frames := flag.Int("frames", 1, "Frames to render per beat generation")
	seed := flag.Int64("seed", 0, "RNG seed (0 means time-based)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: field [options]\n\n")
		fmt.Fprintf(os.Stderr, "Evolves random programs and saves the interesting ones to the gallery.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  field -n 500                # 500 random cellular programs\n")
		fmt.Fprintf(os.Stderr, "  field -beat -generations 20 # evolve a beat lineage\n")
		fmt.Fprintf(os.Stderr, "  field -beat -snapshot l.cbor\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	m, err := manifest.FindAndLoad(".")
	if err != nil {
		log.Errorf("loading studio.toml: %v", err)
		os.Exit(1)
	}
	if m == nil {
		m = manifest.Default()
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = m.Evolve.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	store, err := gallery.Open(m.GalleryPath())
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	defer store.Close()

	if *beatMode {
		if err := evolveBeat(rng, m, store, *generations, *frames, *snapshot); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}
	if err := evolveCellular(rng, m, store, *numPrograms); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// evolveCellular generates random tape programs, runs each under the step
// budget, scores the output, and saves anything that scores.
func evolveCellular(rng *rand.Rand, m *manifest.Manifest, store *gallery.Store, n int) error {
	saved := 0
	for i := 0; i < n; i++ {
		program := ctlang.RandomProgramIO(rng, m.Evolve.ProgramLength)

		state := ctlang.NewState()
		input := ctlang.NewCycleString("Hello, world!")
		for steps := int64(0); steps < m.Evolve.StepsPerFrame && !state.Halted(program); steps++ {
			state.Step(program, input)
		}

		score := ctlang.InterestScore(state.Output)
		if score == 0 {
			continue
		}
		if _, err := store.Save("cellular", program.String(), score); err != nil {
			return err
		}
		saved++
		log.Infof("saved %s (score %d)", program, score)
	}
	log.Noticef("saved %d of %d programs", saved, n)
	return nil
}

// evolveBeat evolves one line of descent: each generation is the previous
// program mutated, rendered for a few frames, and scored by how varied its
// byte field ends up.
func evolveBeat(rng *rand.Rand, m *manifest.Manifest, store *gallery.Store,
	generations, frames int, snapshotPath string) error {

	img := art.NewImage(m.Canvas.Width, m.Canvas.Height)
	piece := &art.Piece{Kind: art.KindBeat, Beat: art.NewRandomBeatPiece(rng)}
	lineage := &gallery.Lineage{Kind: "beat"}

	for gen := 0; gen < generations; gen++ {
		piece.Reset()
		for f := 0; f < frames; f++ {
			piece.Update(1, art.Inputs{})
		}
		piece.Render(img)

		score := fieldScore(piece.Beat.Field)
		source := piece.Source()
		lineage.Generations = append(lineage.Generations, gallery.Generation{
			Source: source,
			Score:  score,
		})
		log.Infof("generation %d: %s (score %d)", gen, source, score)

		if score > 0 {
			if _, err := store.Save("beat", source, score); err != nil {
				return err
			}
		}
		piece = piece.Mutate(rng)
	}

	if snapshotPath != "" {
		data, err := gallery.MarshalLineage(lineage)
		if err != nil {
			return err
		}
		if err := os.WriteFile(snapshotPath, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		log.Noticef("wrote %d generations to %s", len(lineage.Generations), snapshotPath)
	}
	return nil
}

// fieldScore counts distinct byte values in the rendered field; flat fields
// score zero.
func fieldScore(field []byte) int {
	var seen [256]bool
	distinct := 0
	for _, b := range field {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	if distinct <= 1 {
		return 0
	}
	return distinct
}
