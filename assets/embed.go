// Package assets embeds the sprite sheet images. Sheets follow the
// `<name>-<size>px-<cols>x<rows>.png` naming convention, but the dimensions
// in the filename are documentation; the yaml sheet registry is what gets
// checked against the decoded pixels.
package assets

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed sprite-sheets
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		s = strings.TrimPrefix(s, "assets/")
	}
	if !strings.HasPrefix(s, "sprite-sheets/") {
		s = "sprite-sheets/" + s
	}
	return s
}
