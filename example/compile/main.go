package main

import (
	"bytes"
	"flag"
	schematic "github.com/akmalfairuz/df-schematic"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// compile converts every .schematic file in a directory into a compiled .dfs snapshot next to it.
func main() {
	dir := flag.String("dir", "schematics", "directory holding .schematic files")
	flag.Parse()

	log := slog.Default()
	conf := schematic.Config{Log: log}

	paths, err := filepath.Glob(filepath.Join(*dir, "*.schematic"))
	if err != nil {
		log.Error("list schematics", "err", err)
		os.Exit(1)
	}
	failed := 0
	for _, path := range paths {
		if err := compile(conf, path); err != nil {
			log.Error("compile schematic", "path", path, "err", err)
			failed++
		}
	}
	log.Info("compiled schematics", "total", len(paths), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func compile(conf schematic.Config, path string) error {
	s, err := conf.ReadFile(path)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := schematic.Encode(buf, s); err != nil {
		return err
	}
	out := strings.TrimSuffix(path, ".schematic") + schematic.SnapshotExtension
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}
	conf.Log.Info("compiled schematic", "path", out, "id", s.ID(), "size", s.Size(), "bytes", buf.Len())
	return nil
}
