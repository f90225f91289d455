package hanging

import (
	"errors"
	"fmt"
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/akmalfairuz/df-schematic/record"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"strconv"
	"strings"
)

// ErrNoItemID is returned when an item payload has no id.
var ErrNoItemID = errors.New("item has no id")

// ItemStack is the item held by an item frame, kept as it was stored in the schematic.
type ItemStack struct {
	Name   string
	Count  uint8
	Damage int16
	NBT    map[string]any
}

// Empty reports whether the stack holds no item.
func (s ItemStack) Empty() bool {
	return s.Name == "" || s.Count == 0
}

// Stack resolves the stack to a registered item. It returns false if the item is not known.
func (s ItemStack) Stack() (item.Stack, bool) {
	if s.Empty() {
		return item.Stack{}, false
	}
	it, ok := world.ItemByName(s.Name, s.Damage)
	if !ok {
		return item.Stack{}, false
	}
	if nbter, ok := it.(world.NBTer); ok && len(s.NBT) > 0 {
		if decoded, ok := nbter.DecodeNBT(s.NBT).(world.Item); ok {
			it = decoded
		}
	}
	return item.NewStack(it, int(s.Count)), true
}

// Marshal ...
func (s *ItemStack) Marshal(io protocol.IO) {
	io.String(&s.Name)
	io.Uint8(&s.Count)
	io.Int16(&s.Damage)
	hasNBT := len(s.NBT) > 0
	io.Bool(&hasNBT)
	if hasNBT {
		io.NBT(&s.NBT, nbt.LittleEndian)
	}
}

// DecodeItem decodes the item payload of an item frame. Numeric ids are resolved through
// the legacy block table; an absent Count reads as one.
func DecodeItem(r record.Record) (ItemStack, error) {
	var s ItemStack
	if err := decodeItemID(r, &s); err != nil {
		return ItemStack{}, err
	}

	count, ok, err := record.Byte(r, "Count")
	if err != nil {
		return ItemStack{}, fmt.Errorf("decode item count: %w", err)
	}
	s.Count = 1
	if ok {
		s.Count = count
	}

	damage, _, err := record.Int(r, "Damage")
	if err != nil {
		return ItemStack{}, fmt.Errorf("decode item damage: %w", err)
	}
	s.Damage = int16(damage)

	tag, ok, err := record.Compound(r, "tag")
	if err != nil {
		return ItemStack{}, fmt.Errorf("decode item tag: %w", err)
	}
	if m, isMap := tag.(record.Map); ok && isMap {
		s.NBT = m
	}
	return s, nil
}

func decodeItemID(r record.Record, s *ItemStack) error {
	name, ok, err := record.String(r, "id")
	if err == nil && ok {
		if name == "" {
			return ErrNoItemID
		}
		if !strings.Contains(name, ":") {
			name = "minecraft:" + name
		}
		s.Name = name
		return nil
	}
	if !ok {
		return ErrNoItemID
	}
	id, _, err := record.Int(r, "id")
	if err != nil {
		return fmt.Errorf("decode item id: %w", err)
	}
	if s.Name = material.Material(id).Name(); s.Name == "" {
		s.Name = "legacy:" + strconv.Itoa(id)
	}
	return nil
}
