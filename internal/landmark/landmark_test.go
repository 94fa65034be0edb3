package landmark

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Faultbox/headforge/internal/topology"
)

func TestSyntheticSetIsValid(t *testing.T) {
	set := SyntheticSet(0.5)
	if len(set) != topology.NumLandmarks {
		t.Fatalf("synthetic set has %d points, want %d", len(set), topology.NumLandmarks)
	}
	if err := set.Validate(); err != nil {
		t.Fatalf("synthetic set failed validation: %v", err)
	}
}

func TestValidateRejectsWrongCount(t *testing.T) {
	set := SyntheticSet(0.5)[:100]
	err := set.Validate()
	if !errors.Is(err, ErrBadCount) {
		t.Errorf("expected ErrBadCount, got %v", err)
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	set := SyntheticSet(0.5)
	set[42].Y = float32(math.NaN())
	if err := set.Validate(); !errors.Is(err, ErrNotFinite) {
		t.Errorf("expected ErrNotFinite for NaN, got %v", err)
	}

	set = SyntheticSet(0.5)
	set[7].Z = float32(math.Inf(-1))
	if err := set.Validate(); !errors.Is(err, ErrNotFinite) {
		t.Errorf("expected ErrNotFinite for Inf, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < topology.NumLandmarks; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"x": 0.1, "y": -0.2, "z": 0.05}`)
	}
	b.WriteString("]")

	set, err := Decode(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if set[100] != (Point{X: 0.1, Y: -0.2, Z: 0.05}) {
		t.Errorf("unexpected decoded point: %+v", set[100])
	}
}

func TestDecodeRejectsShortInput(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"x":0,"y":0,"z":0}]`))
	if !errors.Is(err, ErrBadCount) {
		t.Errorf("expected ErrBadCount, got %v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
