package material

import (
	"github.com/akmalfairuz/df-schematic/record"
	"github.com/samber/lo"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"strconv"
	"strings"
)

// Material is a legacy (pre-flattening) numeric block id as stored in MCEdit schematics. Ids
// above 255 come from the AddBlocks nibble array.
type Material uint16

const (
	Air                   Material = 0
	CommandBlock          Material = 137
	RepeatingCommandBlock Material = 210
	ChainCommandBlock     Material = 211
)

// Command reports whether blocks of this material carry command text in their tile entity.
func (m Material) Command() bool {
	switch m {
	case CommandBlock, RepeatingCommandBlock, ChainCommandBlock:
		return true
	}
	return false
}

// Name returns the namespaced legacy name of the material, or an empty string if the id is
// not known.
func (m Material) Name() string {
	if int(m) >= len(legacyNames) || legacyNames[m] == "" {
		return ""
	}
	return "minecraft:" + legacyNames[m]
}

// String ...
func (m Material) String() string {
	if n := m.Name(); n != "" {
		return n
	}
	return "legacy:" + strconv.Itoa(int(m))
}

// ByName looks up a material by its legacy name, with or without the minecraft namespace.
func ByName(name string) (Material, bool) {
	m, ok := materialsByName[strings.TrimPrefix(strings.ToLower(name), "minecraft:")]
	return m, ok
}

// MaterialAndData is the content of a single schematic cell: the material, its variant byte
// and optionally the data merged in from the block's tile entity.
type MaterialAndData struct {
	Material Material
	Data     uint8
	// Extra is nil for plain cells.
	Extra Extra
}

// Extra is either Command or Raw. A cell holds at most one of them.
type Extra interface {
	extraID() uint8
}

// Command holds the tile entity attributes of command blocks.
type Command struct {
	// CustomName is empty when the block has no display name.
	CustomName string
	Command    string
}

// Raw holds the unmodified tile entity record of any other block.
type Raw struct {
	Record record.Record
}

const (
	extraNone uint8 = iota
	extraCommand
	extraRaw
)

func (Command) extraID() uint8 { return extraCommand }
func (Raw) extraID() uint8     { return extraRaw }

// Command returns the command attributes of the cell, if it has any.
func (m MaterialAndData) Command() (Command, bool) {
	c, ok := m.Extra.(Command)
	return c, ok
}

// Raw returns the raw tile entity of the cell, if it has one.
func (m MaterialAndData) Raw() (record.Record, bool) {
	r, ok := m.Extra.(Raw)
	return r.Record, ok
}

// WithCommand returns a copy of the cell carrying command attributes in place of any
// existing extra.
func (m MaterialAndData) WithCommand(customName, command string) MaterialAndData {
	m.Extra = Command{CustomName: customName, Command: command}
	return m
}

// WithRaw returns a copy of the cell carrying the raw tile entity in place of any existing
// extra.
func (m MaterialAndData) WithRaw(r record.Record) MaterialAndData {
	m.Extra = Raw{Record: r}
	return m
}

// Plain reports whether the cell has no extra attached.
func (m MaterialAndData) Plain() bool {
	return m.Extra == nil
}

// Marshal encodes or decodes the cell. Raw records that are not a record.Map are written as
// an empty compound.
func (m *MaterialAndData) Marshal(io protocol.IO) {
	io.Uint16((*uint16)(&m.Material))
	io.Uint8(&m.Data)

	id := extraNone
	if m.Extra != nil {
		id = m.Extra.extraID()
	}
	io.Uint8(&id)
	switch id {
	case extraCommand:
		c, _ := m.Extra.(Command)
		io.String(&c.CustomName)
		io.String(&c.Command)
		m.Extra = c
	case extraRaw:
		var data map[string]any
		if r, ok := m.Extra.(Raw); ok {
			if mp, ok := r.Record.(record.Map); ok {
				data = mp
			}
		}
		if data == nil {
			data = map[string]any{}
		}
		io.NBT(&data, nbt.LittleEndian)
		m.Extra = Raw{Record: record.Map(data)}
	default:
		m.Extra = nil
	}
}

// Equal reports whether two plain cells are interchangeable. Cells with extras are never
// equal so they are not merged into runs.
func (m MaterialAndData) Equal(o MaterialAndData) bool {
	return m.Plain() && o.Plain() && m.Material == o.Material && m.Data == o.Data
}

// WriteRun writes a cell with a repeat count.
func WriteRun(io *protocol.Writer, m MaterialAndData, n uint32) {
	io.Varuint32(lo.ToPtr(n))
	m.Marshal(io)
}

// ReadRun reads a cell written by WriteRun.
func ReadRun(io *protocol.Reader) (MaterialAndData, uint32) {
	var (
		n uint32
		m MaterialAndData
	)
	io.Varuint32(&n)
	m.Marshal(io)
	return m, n
}
