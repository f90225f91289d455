package schematic

import (
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"iter"
	"log/slog"
	"sync/atomic"
)

// Config holds the settings shared by loaders, readers and libraries.
type Config struct {
	// Log is used to report tile entities that could not be read. If nil,
	// slog.Default() is used.
	Log *slog.Logger
}

func (conf Config) log() *slog.Logger {
	if conf.Log == nil {
		return slog.Default()
	}
	return conf.Log
}

// Size is the extent of a schematic in blocks.
type Size struct {
	Width, Height, Length int
}

// Volume ...
func (s Size) Volume() int {
	return s.Width * s.Height * s.Length
}

// Schematic is a loaded structure: a grid of blocks, the hanging entities attached to it and
// the tile entity data merged into its blocks. A Schematic is created by a Loader and never
// changes once published, so all of its methods may be called from any goroutine.
type Schematic struct {
	id     uuid.UUID
	size   Size
	center cube.Pos
	origin cube.Pos
	offset cube.Pos

	blocks   []material.MaterialAndData
	entities []hanging.Entity

	loaded atomic.Bool
}

// ID returns an identifier derived from the source the schematic was read from.
func (s *Schematic) ID() uuid.UUID {
	return s.id
}

// Size ...
func (s *Schematic) Size() Size {
	return s.size
}

// Center returns the grid position that structure coordinate (0, 0, 0) refers to.
func (s *Schematic) Center() cube.Pos {
	return s.center
}

// Origin returns the position the structure was copied from in its source world.
func (s *Schematic) Origin() cube.Pos {
	return s.origin
}

// Offset returns the offset of the structure relative to the player that copied it.
func (s *Schematic) Offset() cube.Pos {
	return s.offset
}

// Loaded reports whether the schematic has been published. Any goroutine that observes true
// also observes the complete contents of the schematic.
func (s *Schematic) Loaded() bool {
	return s.loaded.Load()
}

// Contains reports whether pos, relative to the center, lies within the structure. The upper
// bound is inclusive on every axis, so Contains accepts the positions one past the last
// block, unlike Block.
func (s *Schematic) Contains(pos cube.Pos) bool {
	p := pos.Add(s.center)
	return p[0] >= 0 && p[0] <= s.size.Width &&
		p[1] >= 0 && p[1] <= s.size.Height &&
		p[2] >= 0 && p[2] <= s.size.Length
}

// Block returns the block at pos, relative to the center. It returns false if pos is outside
// of the grid.
func (s *Schematic) Block(pos cube.Pos) (material.MaterialAndData, bool) {
	i, ok := s.index(pos.Add(s.center))
	if !ok {
		return material.MaterialAndData{}, false
	}
	return s.blocks[i], true
}

// All iterates over every block of the schematic, with positions relative to the center.
func (s *Schematic) All() iter.Seq2[cube.Pos, material.MaterialAndData] {
	return func(yield func(cube.Pos, material.MaterialAndData) bool) {
		for x := 0; x < s.size.Width; x++ {
			for y := 0; y < s.size.Height; y++ {
				for z := 0; z < s.size.Length; z++ {
					i, _ := s.index(cube.Pos{x, y, z})
					if !yield(cube.Pos{x, y, z}.Sub(s.center), s.blocks[i]) {
						return
					}
				}
			}
		}
	}
}

// Entities returns the hanging entities of the schematic moved so that they are relative to
// anchor. Entities that cannot be moved are left out. The result is a new slice on every
// call and keeps the order the entities were loaded in.
func (s *Schematic) Entities(anchor mgl64.Vec3) []hanging.Entity {
	return lo.FilterMap(s.entities, func(e hanging.Entity, _ int) (hanging.Entity, bool) {
		if e == nil {
			return nil, false
		}
		return e.RelativeTo(anchor)
	})
}

// index converts a grid position to an index into the block slice.
func (s *Schematic) index(p cube.Pos) (int, bool) {
	if p[0] < 0 || p[0] >= s.size.Width || p[1] < 0 || p[1] >= s.size.Height || p[2] < 0 || p[2] >= s.size.Length {
		return 0, false
	}
	return (p[0]*s.size.Height+p[1])*s.size.Length + p[2], true
}
