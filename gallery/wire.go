package gallery

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Lineage is an ordered line of descent of programs: each generation is the
// previous one mutated. Snapshots travel between studios as CBOR.
type Lineage struct {
	Kind        string       `cbor:"kind"`
	Generations []Generation `cbor:"generations"`
}

// Generation is one step of a lineage.
type Generation struct {
	Source string `cbor:"source"`
	Score  int    `cbor:"score"`
}

// cborEncMode uses canonical options so identical lineages encode to
// identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("gallery: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalLineage serializes a Lineage to CBOR bytes.
func MarshalLineage(l *Lineage) ([]byte, error) {
	return cborEncMode.Marshal(l)
}

// UnmarshalLineage deserializes a Lineage from CBOR bytes.
func UnmarshalLineage(data []byte) (*Lineage, error) {
	var l Lineage
	if err := cbor.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("gallery: unmarshal lineage: %w", err)
	}
	return &l, nil
}
