package schematic

import (
	"bytes"
	"errors"
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"reflect"
	"testing"
)

// houseNBT is a 2x2x2 structure with a command block at (1, 0, 1), a sign at (0, 1, 0) and a
// painting.
func houseNBT() map[string]any {
	var blocks, data [8]byte
	blocks[3] = byte(material.CommandBlock)
	blocks[4], data[4] = 63, 5
	blocks[0] = 1
	return map[string]any{
		"Width":     int16(2),
		"Height":    int16(2),
		"Length":    int16(2),
		"Materials": "Alpha",
		"Blocks":    blocks,
		"Data":      data,
		"WEOriginX": int32(100),
		"WEOriginY": int32(64),
		"WEOriginZ": int32(200),
		"WEOffsetX": int32(-1),
		"WEOffsetY": int32(0),
		"WEOffsetZ": int32(-2),
		"TileEntities": []map[string]any{
			{"id": "Control", "x": int32(1), "y": int32(0), "z": int32(1), "CustomName": "", "Command": "say hi"},
			{"id": "Sign", "x": int32(0), "y": int32(1), "z": int32(0), "Text1": "hello"},
		},
		"Entities": []map[string]any{
			{"id": "Painting", "Pos": []float64{101.5, 64.5, 201}, "Motive": "Alban", "Facing": uint8(2)},
			{"id": "Pig", "Pos": []float64{100, 64, 200}},
		},
	}
}

func encodeNBT(t *testing.T, m map[string]any, compress bool) []byte {
	t.Helper()
	data, err := nbt.MarshalEncoding(m, nbt.BigEndian)
	if err != nil {
		t.Fatalf("marshal nbt: %v", err)
	}
	if !compress {
		return data
	}
	buf := bytes.NewBuffer(nil)
	w := gzip.NewWriter(buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	raw := encodeNBT(t, houseNBT(), true)
	s, err := testConfig.Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !s.Loaded() {
		t.Fatalf("expected a published schematic")
	}
	if s.Size() != (Size{2, 2, 2}) || s.Center() != (cube.Pos{1, 0, 1}) {
		t.Fatalf("unexpected size %v and center %v", s.Size(), s.Center())
	}
	if s.Origin() != (cube.Pos{100, 64, 200}) || s.Offset() != (cube.Pos{-1, 0, -2}) {
		t.Fatalf("unexpected origin %v and offset %v", s.Origin(), s.Offset())
	}

	cmd, _ := s.Block(cube.Pos{0, 0, 0})
	if c, ok := cmd.Command(); !ok || cmd.Material != material.CommandBlock || c.Command != "say hi" || c.CustomName != "" {
		t.Fatalf("unexpected command block %+v", cmd)
	}
	sign, _ := s.Block(cube.Pos{-1, 1, -1})
	raw2, ok := sign.Raw()
	if !ok || sign.Material != 63 || sign.Data != 5 {
		t.Fatalf("unexpected sign %+v", sign)
	}
	if text, _ := raw2.Field("Text1"); text != "hello" {
		t.Fatalf("unexpected sign text %v", text)
	}
	stone, _ := s.Block(cube.Pos{-1, 0, -1})
	if stone.Material != 1 || !stone.Plain() {
		t.Fatalf("unexpected stone %+v", stone)
	}

	want := []hanging.Entity{hanging.NewPainting(mgl64.Vec3{0.5, 0.5, 0}, hanging.MotifAlban, cube.FaceNorth)}
	if got := s.Entities(mgl64.Vec3{}); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entities() = %+v, want %+v", got, want)
	}

	again, err := testConfig.Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if again.ID() != s.ID() {
		t.Fatalf("expected identical input to give the same id")
	}
}

func TestReadUncompressed(t *testing.T) {
	s, err := testConfig.Read(bytes.NewReader(encodeNBT(t, houseNBT(), false)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Size() != (Size{2, 2, 2}) {
		t.Fatalf("unexpected size %v", s.Size())
	}
}

func TestReadErrors(t *testing.T) {
	classic := houseNBT()
	classic["Materials"] = "Classic"
	short := houseNBT()
	short["Blocks"] = [7]byte{}
	flat := houseNBT()
	delete(flat, "Height")
	badEntity := houseNBT()
	badEntity["Entities"] = []map[string]any{
		{"id": "ItemFrame", "Pos": []float64{100, 64, 200}, "Item": map[string]any{"Count": uint8(1)}},
	}

	cases := []struct {
		name string
		m    map[string]any
		want error
	}{
		{"materials", classic, ErrMaterials},
		{"block count", short, ErrBlockCount},
		{"dimensions", flat, ErrDimensions},
		{"entities", badEntity, hanging.ErrNoItemID},
	}
	for _, c := range cases {
		_, err := testConfig.Read(bytes.NewReader(encodeNBT(t, c.m, true)))
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestLegacyID(t *testing.T) {
	ids := []byte{1, 2, 3}
	add := []byte{0x21}
	cases := map[int]material.Material{0: 0x101, 1: 0x202, 2: 3}
	for i, want := range cases {
		if got := legacyID(ids, add, i); got != want {
			t.Fatalf("legacyID(%d) = %#x, want %#x", i, got, want)
		}
	}
}
