package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a prefab yaml, preferring an on-disk copy next to the binary so
// tuning can be edited (and hot-reloaded) without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript reads an embedded behavior script.
func LoadScript(name string) ([]byte, error) {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return scriptsFS.ReadFile(s)
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
