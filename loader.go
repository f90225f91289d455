package schematic

import (
	"fmt"
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/akmalfairuz/df-schematic/record"
	"github.com/df-mc/dragonfly/server/block/cube"
	"log/slog"
)

// Loader builds a Schematic. The steps must be called in order: Initialize, LoadTileEntities,
// SetBlock and AddTileEntity for every cell, LoadEntities and finally Publish. A Loader must
// not be used from more than one goroutine.
type Loader struct {
	log *slog.Logger
	s   *Schematic

	tileEntities map[cube.Pos]record.Record
}

// NewLoader ...
func (conf Config) NewLoader() *Loader {
	return &Loader{log: conf.log(), s: &Schematic{}}
}

func (l *Loader) schematic() *Schematic {
	if l.s == nil {
		panic("schematic loader used after publish")
	}
	return l.s
}

// Initialize allocates a grid of the given size filled with air and computes its center.
// Anything loaded before is discarded. Negative dimensions are treated as zero.
func (l *Loader) Initialize(width, height, length int) {
	s := l.schematic()
	s.size = Size{Width: max(width, 0), Height: max(height, 0), Length: max(length, 0)}
	s.center = cube.Pos{s.size.Width / 2, 0, s.size.Length / 2}
	s.blocks = make([]material.MaterialAndData, s.size.Volume())
	s.entities = make([]hanging.Entity, 0)
	l.tileEntities = nil
}

// LoadTileEntities indexes tile entity records by their x, y and z fields. Records without
// all three are skipped and records that cannot be read are logged and skipped. If two
// records share a position, the later one is kept.
func (l *Loader) LoadTileEntities(records []record.Record) {
	if len(records) == 0 {
		return
	}
	l.tileEntities = make(map[cube.Pos]record.Record, len(records))
	for i, rec := range records {
		pos, ok, err := tileEntityPos(rec)
		if err != nil {
			l.log.Error("schematic: read tile entity", "index", i, "err", err)
			continue
		}
		if !ok {
			continue
		}
		l.tileEntities[pos] = rec
	}
}

func tileEntityPos(rec record.Record) (pos cube.Pos, ok bool, err error) {
	for i, name := range [3]string{"x", "y", "z"} {
		v, present, err := record.Int(rec, name)
		if err != nil {
			return cube.Pos{}, false, err
		}
		if !present {
			return cube.Pos{}, false, nil
		}
		pos[i] = v
	}
	return pos, true, nil
}

// SetBlock sets the cell at grid position pos. It returns false if pos is outside of the
// grid.
func (l *Loader) SetBlock(pos cube.Pos, b material.MaterialAndData) bool {
	s := l.schematic()
	i, ok := s.index(pos)
	if !ok {
		return false
	}
	s.blocks[i] = b
	return true
}

// AddTileEntity merges the tile entity indexed at grid position pos into the cell there.
// Command blocks take the custom name and command of the record, any other block keeps the
// record as is. Records that cannot be read are logged and the cell is left unchanged.
func (l *Loader) AddTileEntity(pos cube.Pos) {
	s := l.schematic()
	rec, ok := l.tileEntities[pos]
	if !ok {
		return
	}
	i, ok := s.index(pos)
	if !ok {
		return
	}
	b := s.blocks[i]
	if !b.Material.Command() {
		s.blocks[i] = b.WithRaw(rec)
		return
	}
	name, _, err := record.String(rec, "CustomName")
	if err != nil {
		l.log.Error("schematic: read command block", "pos", pos, "err", err)
		return
	}
	command, _, err := record.String(rec, "Command")
	if err != nil {
		l.log.Error("schematic: read command block", "pos", pos, "err", err)
		return
	}
	s.blocks[i] = b.WithCommand(name, command)
}

// LoadEntities decodes paintings and item frames and appends them in order. Positions are
// stored relative to the center after subtracting origin. Records without an id or position
// and records of other entity types are skipped. A painting or item frame that cannot be
// decoded stops the batch: its error is returned and the records after it are not loaded.
func (l *Loader) LoadEntities(records []record.Record, origin cube.Pos) error {
	s := l.schematic()
	if len(records) == 0 {
		return nil
	}
	shift := vec64(origin).Add(vec64(s.center))
	for i, rec := range records {
		id, ok, err := record.String(rec, "id")
		if err != nil || !ok || id == "" {
			continue
		}
		raw, ok, err := record.Vec3(rec, "Pos")
		if err != nil || !ok {
			continue
		}
		pos := raw.Sub(shift)

		var e hanging.Entity
		switch id {
		case "Painting":
			e, err = decodePainting(rec, pos)
		case "ItemFrame":
			e, err = decodeItemFrame(rec, pos)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("decode %s at index %d: %w", id, i, err)
		}
		s.entities = append(s.entities, e)
	}
	return nil
}

// Publish marks the schematic as loaded and returns it. The Loader cannot be used
// afterwards.
func (l *Loader) Publish() *Schematic {
	s := l.schematic()
	if !s.loaded.CompareAndSwap(false, true) {
		panic("schematic already published")
	}
	l.s, l.tileEntities = nil, nil
	return s
}
