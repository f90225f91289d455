package schematic

import (
	"bytes"
	"encoding/binary"
	"errors"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/segmentio/fasthash/fnv1a"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := testConfig.Read(bytes.NewReader(encodeNBT(t, houseNBT(), true)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, s); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := testConfig.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !decoded.Loaded() {
		t.Fatalf("expected a published schematic")
	}
	if decoded.ID() != s.ID() || decoded.Size() != s.Size() || decoded.Center() != s.Center() {
		t.Fatalf("header mismatch: %v %v vs %v %v", decoded.ID(), decoded.Size(), s.ID(), s.Size())
	}
	if decoded.Origin() != s.Origin() || decoded.Offset() != s.Offset() {
		t.Fatalf("origin mismatch: %v %v vs %v %v", decoded.Origin(), decoded.Offset(), s.Origin(), s.Offset())
	}
	if !reflect.DeepEqual(decoded.blocks, s.blocks) {
		t.Fatalf("blocks mismatch:\n%+v\n%+v", decoded.blocks, s.blocks)
	}
	anchor := mgl64.Vec3{5, 6, 7}
	if !reflect.DeepEqual(decoded.Entities(anchor), s.Entities(anchor)) {
		t.Fatalf("entities mismatch")
	}
}

func TestEncodeUnpublished(t *testing.T) {
	if err := Encode(bytes.NewBuffer(nil), &Schematic{}); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	compress := func(b []byte) *bytes.Buffer {
		buf := bytes.NewBuffer(nil)
		w, err := zstd.NewWriter(buf)
		if err != nil {
			t.Fatalf("zstd: %v", err)
		}
		_, _ = w.Write(b)
		_ = w.Close()
		return buf
	}
	for name, payload := range map[string][]byte{
		"truncated": {1, 2, 3},
		"checksum":  []byte("not a compiled schematic at all"),
	} {
		if _, err := testConfig.Decode(compress(payload)); !errors.Is(err, ErrSnapshot) {
			t.Fatalf("%s: expected ErrSnapshot, got %v", name, err)
		}
	}
}

// snapshotHeader builds a checksummed, compressed snapshot with the given dimensions, one run
// of stone per count passed and no entities.
func snapshotHeader(t *testing.T, dims [3]int32, runs ...uint32) *bytes.Buffer {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	pw := protocol.NewWriter(buf, 0)
	pw.Uint32(lo.ToPtr(snapshotMagic))
	pw.Uint8(lo.ToPtr(snapshotVersion))
	pw.UUID(lo.ToPtr(uuid.New()))
	for _, v := range dims {
		pw.Varint32(lo.ToPtr(v))
	}
	pw.BlockPos(&protocol.BlockPos{})
	pw.BlockPos(&protocol.BlockPos{})
	for _, n := range runs {
		material.WriteRun(pw, material.MaterialAndData{Material: 1}, n)
	}
	pw.Varuint32(lo.ToPtr(uint32(0)))
	if err := binary.Write(buf, binary.LittleEndian, fnv1a.HashBytes64(buf.Bytes())); err != nil {
		t.Fatalf("checksum: %v", err)
	}

	out := bytes.NewBuffer(nil)
	w, err := zstd.NewWriter(out)
	if err != nil {
		t.Fatalf("zstd: %v", err)
	}
	_, _ = w.Write(buf.Bytes())
	_ = w.Close()
	return out
}

func TestDecodeRejectsOversizedDimensions(t *testing.T) {
	cases := map[string][3]int32{
		"volume":   {1000, 50, 1000},
		"axis":     {70000, 1, 1},
		"negative": {-1, 2, 2},
	}
	for name, dims := range cases {
		if _, err := testConfig.Decode(snapshotHeader(t, dims)); !errors.Is(err, ErrSnapshot) {
			t.Fatalf("%s: expected ErrSnapshot, got %v", name, err)
		}
	}
}

func TestDecodeRuns(t *testing.T) {
	if _, err := testConfig.Decode(snapshotHeader(t, [3]int32{2, 2, 2}, 4)); !errors.Is(err, ErrSnapshot) {
		t.Fatalf("expected missing runs to be rejected, got %v", err)
	}
	if _, err := testConfig.Decode(snapshotHeader(t, [3]int32{2, 2, 2}, 4, 5)); !errors.Is(err, ErrSnapshot) {
		t.Fatalf("expected an overlong run to be rejected, got %v", err)
	}

	s, err := testConfig.Decode(snapshotHeader(t, [3]int32{2, 2, 2}, 3, 5))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for pos, b := range s.All() {
		if b.Material != 1 {
			t.Fatalf("expected stone at %v, got %v", pos, b)
		}
	}
}
