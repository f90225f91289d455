package schematic

import (
	"errors"
	"fmt"
	"github.com/samber/lo"
	"io/fs"
	"slices"
	"sync"
)

// ErrNotFound is returned by Library.Load when no file exists for a name.
var ErrNotFound = errors.New("schematic not found")

// Library loads schematics by name from a file system and keeps them once loaded. A compiled
// snapshot (name.dfs) is preferred over an MCEdit file (name.schematic). Library is safe for
// concurrent use.
type Library struct {
	conf Config
	fsys fs.FS

	mu         sync.Mutex
	schematics map[string]*Schematic
}

// NewLibrary ...
func (conf Config) NewLibrary(fsys fs.FS) *Library {
	return &Library{
		conf:       conf,
		fsys:       fsys,
		schematics: make(map[string]*Schematic),
	}
}

// Load returns the schematic with the given name, reading it on first use.
func (lib *Library) Load(name string) (*Schematic, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()

	if s, ok := lib.schematics[name]; ok {
		return s, nil
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("schematic %q: %w", name, fs.ErrInvalid)
	}
	s, err := lib.load(name)
	if err != nil {
		return nil, fmt.Errorf("schematic %q: %w", name, err)
	}
	lib.conf.log().Debug("schematic loaded", "name", name, "id", s.ID(), "size", s.Size(), "entities", len(s.entities))
	lib.schematics[name] = s
	return s, nil
}

func (lib *Library) load(name string) (*Schematic, error) {
	f, err := lib.fsys.Open(name + SnapshotExtension)
	if err == nil {
		defer f.Close()
		return lib.conf.Decode(f)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	f, err = lib.fsys.Open(name + ".schematic")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lib.conf.Read(f)
}

// Forget removes a schematic from the library so that the next Load reads it again.
func (lib *Library) Forget(name string) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	delete(lib.schematics, name)
}

// Names returns the names of the loaded schematics in sorted order.
func (lib *Library) Names() []string {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	names := lo.Keys(lib.schematics)
	slices.Sort(names)
	return names
}
