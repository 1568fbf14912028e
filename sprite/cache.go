package sprite

import (
	"fmt"
	"sync"
)

// OpenFunc resolves an asset file name to its raw bytes. The game wires this
// to the embedded asset FS; tests substitute in-memory images.
type OpenFunc func(file string) ([]byte, error)

// Cache loads sheets on first reference and hands out the same *Sheet for
// every subsequent load of the same asset name. It is owned by the
// application context rather than package state so the single-shared-copy
// guarantee survives without a hidden global.
type Cache struct {
	open OpenFunc

	mu     sync.Mutex
	sheets map[string]*Sheet
}

// NewCache creates an empty cache reading assets through open.
func NewCache(open OpenFunc) *Cache {
	return &Cache{
		open:   open,
		sheets: make(map[string]*Sheet),
	}
}

// Load returns the shared sheet for spec, decoding and slicing it on first
// use. Loads are keyed by spec name; two specs with the same name share one
// decode.
func (c *Cache) Load(spec SheetSpec) (*Sheet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sheet, ok := c.sheets[spec.Name]; ok {
		return sheet, nil
	}

	if c.open == nil {
		return nil, fmt.Errorf("sprite: cache has no asset source for %s", spec.Name)
	}
	data, err := c.open(spec.File)
	if err != nil {
		return nil, fmt.Errorf("sprite: read %s (%s): %w", spec.Name, spec.File, err)
	}
	sheet, err := Decode(spec, data)
	if err != nil {
		return nil, err
	}
	c.sheets[spec.Name] = sheet
	return sheet, nil
}

// Get returns an already-loaded sheet without triggering a load.
func (c *Cache) Get(name string) (*Sheet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sheet, ok := c.sheets[name]
	return sheet, ok
}
