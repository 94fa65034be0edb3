package landmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a landmark set from JSON: an ordered array of
// {"x": .., "y": .., "z": ..} objects as emitted by the detector
// boundary. The decoded set is validated before being returned.
func Decode(r io.Reader) (Set, error) {
	var set Set
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding landmarks: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// DecodeFile reads and validates a landmark set from a JSON file.
func DecodeFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening landmark file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
