package schematic

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/akmalfairuz/df-schematic/record"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"io"
	"os"
)

var (
	// ErrMaterials is returned for schematics that do not use the Alpha block ids.
	ErrMaterials = errors.New("unsupported schematic materials")
	// ErrDimensions is returned when the size of a schematic is missing or negative.
	ErrDimensions = errors.New("invalid schematic dimensions")
	// ErrBlockCount is returned when the block array does not match the dimensions.
	ErrBlockCount = errors.New("block count does not match dimensions")
)

// sourceNamespace is the namespace of the ids of schematics read from MCEdit files.
var sourceNamespace = uuid.MustParse("5d7c3c1e-7a3b-4f3e-9a53-3b9f4f0e2c61")

// ReadFile reads an MCEdit schematic file.
func (conf Config) ReadFile(path string) (*Schematic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := conf.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read schematic %s: %w", path, err)
	}
	return s, nil
}

// Read reads an MCEdit schematic: a big endian NBT compound, usually gzip compressed, holding
// legacy block ids. The returned Schematic is published.
func (conf Config) Read(r io.Reader) (*Schematic, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic: %w", err)
	}
	var src io.Reader = bytes.NewReader(raw)
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		decompressor, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer decompressor.Close()
		src = decompressor
	}

	var m map[string]any
	if err := nbt.NewDecoderWithEncoding(src, nbt.BigEndian).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode schematic nbt: %w", err)
	}
	return conf.build(uuid.NewSHA1(sourceNamespace, raw), record.Map(m))
}

func (conf Config) build(id uuid.UUID, root record.Record) (*Schematic, error) {
	if materials, ok, err := record.String(root, "Materials"); err != nil {
		return nil, err
	} else if ok && materials != "Alpha" {
		return nil, fmt.Errorf("%w: %q", ErrMaterials, materials)
	}

	var dims [3]int
	for i, name := range [3]string{"Width", "Height", "Length"} {
		v, ok, err := record.Int(root, name)
		if err != nil {
			return nil, err
		}
		if !ok || v < 0 {
			return nil, fmt.Errorf("%w: %s", ErrDimensions, name)
		}
		dims[i] = v
	}
	width, height, length := dims[0], dims[1], dims[2]

	ids, _, err := record.Bytes(root, "Blocks")
	if err != nil {
		return nil, err
	}
	if len(ids) != width*height*length {
		return nil, fmt.Errorf("%w: %d blocks for %dx%dx%d", ErrBlockCount, len(ids), width, height, length)
	}
	data, _, err := record.Bytes(root, "Data")
	if err != nil {
		return nil, err
	}
	add, _, err := record.Bytes(root, "AddBlocks")
	if err != nil {
		return nil, err
	}
	origin, err := readVector(root, "WEOrigin")
	if err != nil {
		return nil, err
	}
	offset, err := readVector(root, "WEOffset")
	if err != nil {
		return nil, err
	}
	tileEntities, _, err := record.List(root, "TileEntities")
	if err != nil {
		return nil, err
	}
	entities, _, err := record.List(root, "Entities")
	if err != nil {
		return nil, err
	}

	l := conf.NewLoader()
	l.Initialize(width, height, length)
	l.LoadTileEntities(tileEntities)
	for y := 0; y < height; y++ {
		for z := 0; z < length; z++ {
			for x := 0; x < width; x++ {
				i := (y*length+z)*width + x
				b := material.MaterialAndData{Material: legacyID(ids, add, i)}
				if i < len(data) {
					b.Data = data[i] & 0xf
				}
				pos := cube.Pos{x, y, z}
				l.SetBlock(pos, b)
				l.AddTileEntity(pos)
			}
		}
	}
	if err := l.LoadEntities(entities, origin); err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}

	l.s.id, l.s.origin, l.s.offset = id, origin, offset
	return l.Publish(), nil
}

// legacyID combines the low byte of a block id with the high nibble stored in AddBlocks.
func legacyID(ids, add []byte, i int) material.Material {
	id := material.Material(ids[i])
	if i>>1 >= len(add) {
		return id
	}
	if i&1 == 0 {
		return material.Material(add[i>>1]&0x0f)<<8 | id
	}
	return material.Material(add[i>>1]&0xf0)<<4 | id
}

func readVector(root record.Record, prefix string) (cube.Pos, error) {
	var pos cube.Pos
	for i, axis := range [3]string{"X", "Y", "Z"} {
		v, _, err := record.Int(root, prefix+axis)
		if err != nil {
			return cube.Pos{}, err
		}
		pos[i] = v
	}
	return pos, nil
}
