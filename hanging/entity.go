package hanging

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"math"
)

// Entity is a decorative entity attached to a block of a schematic. Entities are never
// changed once created: RelativeTo returns a new Entity.
type Entity interface {
	ID() uint8
	Position() mgl64.Vec3
	Facing() cube.Face
	// RelativeTo returns a copy of the entity with its position offset by anchor. It returns
	// false if the result is not a usable position.
	RelativeTo(anchor mgl64.Vec3) (Entity, bool)
	Marshal(io protocol.IO)
}

const (
	_ = iota
	IDPainting
	IDItemFrame
)

var entityPool = map[uint8]func() Entity{
	IDPainting:  func() Entity { return &Painting{} },
	IDItemFrame: func() Entity { return &ItemFrame{} },
}

// Read ...
func Read(io *protocol.Reader, e *Entity) bool {
	var id uint8
	io.Uint8(&id)
	if f, ok := entityPool[id]; ok {
		*e = f()
		(*e).Marshal(io)
		return true
	}
	return false
}

// Write ...
func Write(io *protocol.Writer, e Entity) {
	io.Uint8(lo.ToPtr(e.ID()))
	e.Marshal(io)
}

// Painting ...
type Painting struct {
	Pos   mgl64.Vec3
	Face  cube.Face
	Motif Motif
}

// NewPainting ...
func NewPainting(pos mgl64.Vec3, motif Motif, face cube.Face) *Painting {
	return &Painting{Pos: pos, Face: face, Motif: motif}
}

func (*Painting) ID() uint8 {
	return IDPainting
}

func (p *Painting) Position() mgl64.Vec3 {
	return p.Pos
}

func (p *Painting) Facing() cube.Face {
	return p.Face
}

func (p *Painting) RelativeTo(anchor mgl64.Vec3) (Entity, bool) {
	pos, ok := offset(p.Pos, anchor)
	if !ok {
		return nil, false
	}
	cp := *p
	cp.Pos = pos
	return &cp, true
}

func (p *Painting) Marshal(io protocol.IO) {
	marshalVec3(io, &p.Pos)
	marshalFace(io, &p.Face)
	io.Uint8((*uint8)(&p.Motif))
}

// ItemFrame ...
type ItemFrame struct {
	Pos      mgl64.Vec3
	Face     cube.Face
	Item     ItemStack
	Rotation Rotation
}

// NewItemFrame ...
func NewItemFrame(pos mgl64.Vec3, it ItemStack, face cube.Face, rot Rotation) *ItemFrame {
	return &ItemFrame{Pos: pos, Face: face, Item: it, Rotation: rot}
}

func (*ItemFrame) ID() uint8 {
	return IDItemFrame
}

func (f *ItemFrame) Position() mgl64.Vec3 {
	return f.Pos
}

func (f *ItemFrame) Facing() cube.Face {
	return f.Face
}

func (f *ItemFrame) RelativeTo(anchor mgl64.Vec3) (Entity, bool) {
	pos, ok := offset(f.Pos, anchor)
	if !ok {
		return nil, false
	}
	cp := *f
	cp.Pos = pos
	return &cp, true
}

func (f *ItemFrame) Marshal(io protocol.IO) {
	marshalVec3(io, &f.Pos)
	marshalFace(io, &f.Face)
	io.Uint8((*uint8)(&f.Rotation))
	protocol.Single(io, &f.Item)
}

func offset(pos, anchor mgl64.Vec3) (mgl64.Vec3, bool) {
	res := anchor.Add(pos)
	for _, f := range res {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return mgl64.Vec3{}, false
		}
	}
	return res, true
}

func marshalVec3(io protocol.IO, v *mgl64.Vec3) {
	for i := range v {
		bits := math.Float64bits(v[i])
		io.Uint64(&bits)
		v[i] = math.Float64frombits(bits)
	}
}

func marshalFace(io protocol.IO, f *cube.Face) {
	code := FacingCode(*f)
	io.Uint8(&code)
	*f = Facing(code)
}
