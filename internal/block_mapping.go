package internal

import (
	"github.com/akmalfairuz/df-schematic/material"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/segmentio/fasthash/fnv1a"
	"strings"
)

var nameToBlockMapping map[uint32]world.Block

// ConstructBlockMappings indexes the registered blocks by name, keeping the first state of
// each block.
func ConstructBlockMappings() {
	blocks := world.Blocks()
	nameToBlockMapping = make(map[uint32]world.Block, len(blocks))
	for _, b := range blocks {
		name, _ := b.EncodeBlock()
		hash := fnv1a.HashString32(name)
		if _, ok := nameToBlockMapping[hash]; !ok {
			nameToBlockMapping[hash] = b
		}
	}
}

// legacyRenames maps legacy block names to their current names where they differ.
var legacyRenames = map[string]string{
	"grass":                 "grass_block",
	"planks":                "oak_planks",
	"log":                   "oak_log",
	"log2":                  "acacia_log",
	"leaves":                "oak_leaves",
	"leaves2":               "acacia_leaves",
	"sapling":               "oak_sapling",
	"wool":                  "white_wool",
	"carpet":                "white_carpet",
	"stained_glass":         "white_stained_glass",
	"stained_glass_pane":    "white_stained_glass_pane",
	"stained_hardened_clay": "white_terracotta",
	"concrete":              "white_concrete",
	"concrete_powder":       "white_concrete_powder",
	"stonebrick":            "stone_bricks",
	"fence":                 "oak_fence",
	"wooden_slab":           "oak_slab",
	"stone_slab":            "smooth_stone_slab",
	"silver_shulker_box":    "light_gray_shulker_box",
}

// BlockName returns the name a legacy material is registered under today.
func BlockName(m material.Material) string {
	name := m.Name()
	if name == "" {
		return ""
	}
	legacy := strings.TrimPrefix(name, "minecraft:")
	if renamed, ok := legacyRenames[legacy]; ok {
		return "minecraft:" + renamed
	}
	return name
}

// MaterialToBlock returns the registered block for a schematic cell, or air if there is none.
// The variant byte is not translated, so the default state of the block is used.
func MaterialToBlock(m material.MaterialAndData) world.Block {
	name := BlockName(m.Material)
	if name == "" {
		return block.Air{}
	}
	b, ok := nameToBlockMapping[fnv1a.HashString32(name)]
	if !ok {
		return block.Air{}
	}
	return b
}
