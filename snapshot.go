package schematic

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/segmentio/fasthash/fnv1a"
	"io"
)

// SnapshotExtension is the file extension of compiled schematics.
const SnapshotExtension = ".dfs"

const (
	snapshotMagic   uint32 = 0x43534644 // "DFSC"
	snapshotVersion uint8  = 1

	// maxSnapshotAxis and maxSnapshotVolume bound the grid a snapshot may declare.
	maxSnapshotAxis   = 1<<16 - 1
	maxSnapshotVolume = 1 << 24
)

var (
	// ErrNotLoaded is returned when encoding a schematic that has not been published.
	ErrNotLoaded = errors.New("schematic is not loaded")
	// ErrSnapshot is returned for data that is not a valid compiled schematic.
	ErrSnapshot = errors.New("invalid schematic snapshot")
)

// Encode writes a compiled form of a loaded schematic to w. Runs of identical plain blocks
// are stored once. The output is zstd compressed and ends with a checksum of its contents.
func Encode(w io.Writer, s *Schematic) error {
	if !s.Loaded() {
		return ErrNotLoaded
	}
	if err := checkSnapshotSize(s.size); err != nil {
		return err
	}
	buf := bytes.NewBuffer(make([]byte, 0, 8192))
	pw := protocol.NewWriter(buf, 0)

	pw.Uint32(lo.ToPtr(snapshotMagic))
	pw.Uint8(lo.ToPtr(snapshotVersion))
	pw.UUID(lo.ToPtr(s.id))
	for _, v := range [3]int{s.size.Width, s.size.Height, s.size.Length} {
		pw.Varint32(lo.ToPtr(int32(v)))
	}
	pw.BlockPos(lo.ToPtr(cubeToBlockPos(s.origin)))
	pw.BlockPos(lo.ToPtr(cubeToBlockPos(s.offset)))

	for i := 0; i < len(s.blocks); {
		n := 1
		for i+n < len(s.blocks) && s.blocks[i].Equal(s.blocks[i+n]) {
			n++
		}
		material.WriteRun(pw, s.blocks[i], uint32(n))
		i += n
	}

	pw.Varuint32(lo.ToPtr(uint32(len(s.entities))))
	for _, e := range s.entities {
		hanging.Write(pw, e)
	}
	if err := binary.Write(buf, binary.LittleEndian, fnv1a.HashBytes64(buf.Bytes())); err != nil {
		return err
	}

	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := encoder.Write(buf.Bytes()); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}

// Decode reads a schematic written by Encode. The returned Schematic is published.
func (conf Config) Decode(r io.Reader) (s *Schematic, err error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer decoder.Close()

	buffer := bytes.NewBuffer(make([]byte, 0, 8192))
	if _, err := io.Copy(buffer, decoder); err != nil {
		return nil, fmt.Errorf("failed to copy decompressed data: %w", err)
	}
	payload := buffer.Bytes()
	if len(payload) < 8 {
		return nil, fmt.Errorf("%w: truncated", ErrSnapshot)
	}
	payload, sum := payload[:len(payload)-8], binary.LittleEndian.Uint64(payload[len(payload)-8:])
	if fnv1a.HashBytes64(payload) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrSnapshot)
	}

	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrSnapshot, r)
		}
	}()
	return conf.decode(protocol.NewReader(bytes.NewBuffer(payload), 0, false))
}

func (conf Config) decode(pr *protocol.Reader) (*Schematic, error) {
	var (
		magic   uint32
		version uint8
		id      uuid.UUID
		dims    [3]int32
	)
	pr.Uint32(&magic)
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrSnapshot, magic)
	}
	pr.Uint8(&version)
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrSnapshot, version)
	}
	pr.UUID(&id)
	for i := range dims {
		pr.Varint32(&dims[i])
	}
	var origin, offset protocol.BlockPos
	pr.BlockPos(&origin)
	pr.BlockPos(&offset)

	size := Size{Width: int(dims[0]), Height: int(dims[1]), Length: int(dims[2])}
	if err := checkSnapshotSize(size); err != nil {
		return nil, err
	}

	// Runs are validated before the grid is allocated.
	type run struct {
		b material.MaterialAndData
		n uint32
	}
	var (
		runs  []run
		total uint64
	)
	for volume := uint64(size.Volume()); total < volume; {
		b, n := material.ReadRun(pr)
		if n == 0 || total+uint64(n) > volume {
			return nil, fmt.Errorf("%w: bad run of %d blocks at %d", ErrSnapshot, n, total)
		}
		runs = append(runs, run{b: b, n: n})
		total += uint64(n)
	}

	l := conf.NewLoader()
	l.Initialize(size.Width, size.Height, size.Length)
	s := l.s
	i := 0
	for _, r := range runs {
		for end := i + int(r.n); i < end; i++ {
			s.blocks[i] = r.b
		}
	}

	var count uint32
	pr.Varuint32(&count)
	for i := uint32(0); i < count; i++ {
		var e hanging.Entity
		if !hanging.Read(pr, &e) {
			return nil, fmt.Errorf("%w: unknown entity at index %d", ErrSnapshot, i)
		}
		s.entities = append(s.entities, e)
	}

	s.id, s.origin, s.offset = id, blockPosToCubePos(origin), blockPosToCubePos(offset)
	return l.Publish(), nil
}

// checkSnapshotSize rejects sizes that cannot be stored in a snapshot.
func checkSnapshotSize(size Size) error {
	for _, v := range [3]int{size.Width, size.Height, size.Length} {
		if v < 0 || v > maxSnapshotAxis {
			return fmt.Errorf("%w: dimension %d out of range", ErrSnapshot, v)
		}
	}
	if v := size.Volume(); v > maxSnapshotVolume {
		return fmt.Errorf("%w: volume %d exceeds %d blocks", ErrSnapshot, v, maxSnapshotVolume)
	}
	return nil
}
