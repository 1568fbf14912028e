package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/milk9111/logastroids/assets"
	"github.com/milk9111/logastroids/obj"
	"github.com/milk9111/logastroids/prefabs"
	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/scores"
	"github.com/milk9111/logastroids/sprite"
)

// Context owns everything that outlives a single run: the sheet registry,
// the decoded sprite caches, the tuning document and the high-score store.
type Context struct {
	debug bool

	sheets  map[string]sprite.SheetSpec
	cache   *sprite.Cache
	library *render.Library

	tuning *prefabs.TuningSpec

	store  *scores.Store
	scores *scores.List

	rng *rand.Rand
}

func NewContext(debug bool) (*Context, error) {
	sheets, err := prefabs.LoadSheets()
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	manager, err := gdata.Open(gdata.Config{AppName: "logastroids"})
	if err != nil {
		// No save dir just means no persistent high scores.
		log.Printf("high-score storage unavailable: %v", err)
		manager = nil
	}
	store := scores.NewStore(manager, tuning.Score.MaxEntries, tuning.Score.MaxNameLen)

	cache := sprite.NewCache(assets.LoadFile)
	return &Context{
		debug:   debug,
		sheets:  sheets,
		cache:   cache,
		library: render.NewLibrary(cache),
		tuning:  tuning,
		store:   store,
		scores:  store.Load(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// ReloadTuning re-reads the tuning document, keeping the old one on error.
func (c *Context) ReloadTuning() error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	c.tuning = tuning
	return nil
}

// frameSet loads a registered sheet into GPU frames.
func (c *Context) frameSet(name string) (*render.FrameSet, error) {
	spec, ok := c.sheets[name]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", name)
	}
	return c.library.Load(spec)
}

// frameSets loads a numbered sheet family, such as ship-damage-1..12.
func (c *Context) frameSets(prefix string, n int) ([]*render.FrameSet, error) {
	out := make([]*render.FrameSet, 0, n)
	for i := 1; i <= n; i++ {
		set, err := c.frameSet(fmt.Sprintf("%s-%d", prefix, i))
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}
	return out, nil
}

func (c *Context) shipSheets() (obj.ShipSheets, error) {
	var s obj.ShipSheets
	var err error
	load := func(dst **render.FrameSet, name string) {
		if err != nil {
			return
		}
		*dst, err = c.frameSet(name)
	}
	load(&s.Static, "ship-static")
	load(&s.Thrust, "ship-thrust")
	load(&s.FireThrustLeft, "ship-fire-thrust-left")
	load(&s.FireThrustRight, "ship-fire-thrust-right")
	load(&s.FireStaticLeft, "ship-fire-static-left")
	load(&s.FireStaticRight, "ship-fire-static-right")
	load(&s.Shield, "shield")
	if err != nil {
		return s, err
	}
	s.Damage, err = c.frameSets("ship-damage", 12)
	return s, err
}

func (c *Context) asteroidStages() ([]*render.FrameSet, error) {
	return c.frameSets("asteroid-stage", 4)
}

func (c *Context) brokenSheets() ([]*render.FrameSet, error) {
	return c.frameSets("broken", 4)
}

func (c *Context) rocketSheets() ([]*render.FrameSet, error) {
	return c.frameSets("rocket", 4)
}
