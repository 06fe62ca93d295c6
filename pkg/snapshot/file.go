package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-canopy/canopy/pkg/state"
)

// Load reads a snapshot file, choosing the codec by extension: .yaml/.yml
// or .json.
func Load(filename string) (state.Value, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext(filename) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".json":
		return DecodeJSON(data)
	default:
		return nil, fmt.Errorf("snapshot: unsupported extension %q", ext(filename))
	}
}

// Save writes a snapshot file, choosing the codec by extension.
func Save(filename string, v state.Value) error {
	var data []byte
	var err error
	switch ext(filename) {
	case ".yaml", ".yml":
		data, err = EncodeYAML(v)
	case ".json":
		data, err = EncodeJSON(v)
		data = append(data, '\n')
	default:
		return fmt.Errorf("snapshot: unsupported extension %q", ext(filename))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
