package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed shaders
var builtin embed.FS

// LoadShader returns the GLSL source for name. A file under dir/shaders
// overrides the copy built into the binary; dir may be empty.
func LoadShader(dir, name string) (string, error) {
	if dir != "" {
		path := filepath.Join(dir, "shaders", name)
		b, err := os.ReadFile(path)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("load shader %q: %w", path, err)
		}
	}
	b, err := builtin.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}
