package series

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load picks a loader by file extension.
func Load(path string) (Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".txt", ".dat", ".xy":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		d, err := ParseText(string(b))
		if err != nil {
			return Data{}, fmt.Errorf("%s: %w", path, err)
		}
		d.Source = path
		return d, nil
	}
	return Data{}, fmt.Errorf("%s: %w", path, ErrUnsupported)
}
