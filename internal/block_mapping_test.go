package internal

import (
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/df-mc/dragonfly/server/block"
	"testing"
)

func TestBlockName(t *testing.T) {
	cases := map[material.Material]string{
		1:    "minecraft:stone",
		2:    "minecraft:grass_block",
		35:   "minecraft:white_wool",
		98:   "minecraft:stone_bricks",
		137:  "minecraft:command_block",
		227:  "minecraft:light_gray_shulker_box",
		4000: "",
	}
	for m, want := range cases {
		if got := BlockName(m); got != want {
			t.Fatalf("BlockName(%d) = %q, want %q", m, got, want)
		}
	}
}

func TestUnknownMaterialIsAir(t *testing.T) {
	if _, ok := MaterialToBlock(material.MaterialAndData{Material: 4000}).(block.Air); !ok {
		t.Fatalf("expected air for an unknown material")
	}
}
