package sprite

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, spec SheetSpec) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testSheetImage(spec)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestCacheSharesSheets(t *testing.T) {
	spec := SheetSpec{Name: "asteroid", File: "asteroid.png", FrameSize: 8, Columns: 2, Rows: 2}
	data := pngBytes(t, spec)

	opens := 0
	cache := NewCache(func(file string) ([]byte, error) {
		opens++
		if file != "asteroid.png" {
			return nil, fmt.Errorf("unexpected file %s", file)
		}
		return data, nil
	})

	first, err := cache.Load(spec)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := cache.Load(spec)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Fatalf("repeated loads returned different sheets")
	}
	if opens != 1 {
		t.Fatalf("asset opened %d times, want 1", opens)
	}

	got, ok := cache.Get("asteroid")
	if !ok || got != first {
		t.Fatalf("Get should return the cached sheet")
	}
	if _, ok := cache.Get("missing"); ok {
		t.Fatalf("Get reported a sheet that was never loaded")
	}
}

func TestCacheLoadErrors(t *testing.T) {
	cache := NewCache(func(file string) ([]byte, error) {
		return nil, fmt.Errorf("no such asset %s", file)
	})
	spec := SheetSpec{Name: "ghost", File: "ghost.png", FrameSize: 8, Columns: 1, Rows: 1}
	if _, err := cache.Load(spec); err == nil {
		t.Fatalf("expected read error")
	}
	// A failed load must not poison the cache with a nil sheet.
	if _, ok := cache.Get("ghost"); ok {
		t.Fatalf("failed load was cached")
	}
}
