package main

import (
	"errors"
	"fmt"
	schematic "github.com/akmalfairuz/df-schematic"
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/internal"
	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
	"log/slog"
	"os"
)

type config struct {
	Server     server.UserConfig
	Schematics struct {
		// Directory holds .schematic and compiled .dfs files.
		Directory string
		// Paste is the schematic pasted at the position of every player that joins.
		Paste string
	}
}

func main() {
	log := slog.Default()
	c, err := readConfig()
	if err != nil {
		log.Error("read config", "err", err)
		os.Exit(1)
	}

	conf, err := c.Server.Config(log)
	if err != nil {
		log.Error("server config", "err", err)
		os.Exit(1)
	}
	srv := conf.New()

	schematic.Init()
	lib := schematic.Config{Log: log}.NewLibrary(os.DirFS(c.Schematics.Directory))
	s, err := lib.Load(c.Schematics.Paste)
	if err != nil {
		log.Error("load schematic", "err", err)
		os.Exit(1)
	}

	srv.Listen()
	srv.CloseOnProgramEnd()
	for p := range srv.Accept() {
		paste(p.Tx(), s, cube.PosFromVec3(p.Position()), log)
		p.Messagef("pasted %v (%v)", c.Schematics.Paste, s.Size())
		p.SetGameMode(world.GameModeCreative)
		p.Handle(&playerHandler{s: s, log: log})
	}
}

// paste places every block and hanging entity of s around pos.
func paste(tx *world.Tx, s *schematic.Schematic, pos cube.Pos, log *slog.Logger) {
	opts := &world.SetOpts{DisableBlockUpdates: true, DisableLiquidDisplacement: true}
	for rel, b := range s.All() {
		tx.SetBlock(pos.Add(rel), internal.MaterialToBlock(b), opts)
	}
	for _, e := range s.Entities(pos.Vec3()) {
		switch e := e.(type) {
		case *hanging.ItemFrame:
			frame := block.ItemFrame{Facing: e.Face, Rotations: int(e.Rotation), DropChance: 1}
			if stack, ok := e.Item.Stack(); ok {
				frame.Item = stack
			}
			tx.SetBlock(cube.PosFromVec3(e.Pos), frame, opts)
		default:
			log.Debug("hanging entity not placed", "kind", fmt.Sprintf("%T", e), "pos", e.Position())
		}
	}
}

type playerHandler struct {
	player.NopHandler
	s   *schematic.Schematic
	log *slog.Logger
}

// HandleItemUseOnBlock pastes the schematic on top of the clicked block when a player is sneaking.
func (h *playerHandler) HandleItemUseOnBlock(ctx *player.Context, pos cube.Pos, face cube.Face, _ mgl64.Vec3) {
	if !ctx.Val().Sneaking() {
		return
	}
	ctx.Cancel()
	paste(ctx.Val().Tx(), h.s, pos.Side(face), h.log)
}

func readConfig() (config, error) {
	c := config{Server: server.DefaultConfig()}
	c.Schematics.Directory = "schematics"
	c.Schematics.Paste = "house"

	if _, err := os.Stat("config.toml"); errors.Is(err, os.ErrNotExist) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
