package schematic

import (
	"bytes"
	"errors"
	"reflect"
	"sync"
	"testing"
	"testing/fstest"
)

func TestLibrary(t *testing.T) {
	house := encodeNBT(t, houseNBT(), true)

	tower := houseNBT()
	tower["Height"], tower["Blocks"], tower["Data"] = int16(1), [4]byte{1, 1, 1, 1}, [4]byte{}
	delete(tower, "TileEntities")
	s, err := testConfig.Read(bytes.NewReader(encodeNBT(t, tower, true)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	compiled := bytes.NewBuffer(nil)
	if err := Encode(compiled, s); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lib := testConfig.NewLibrary(fstest.MapFS{
		"house.schematic": {Data: house},
		"tower.dfs":       {Data: compiled.Bytes()},
		"tower.schematic": {Data: []byte("ignored")},
	})

	first, err := lib.Load("house")
	if err != nil {
		t.Fatalf("Load(house): %v", err)
	}
	if second, _ := lib.Load("house"); second != first {
		t.Fatalf("expected the cached schematic to be returned")
	}
	towerLoaded, err := lib.Load("tower")
	if err != nil {
		t.Fatalf("Load(tower): %v", err)
	}
	if towerLoaded.Size() != (Size{2, 1, 2}) || towerLoaded.ID() != s.ID() {
		t.Fatalf("expected the compiled tower, got %v", towerLoaded.Size())
	}
	if _, err := lib.Load("castle"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := lib.Load("../house"); err == nil {
		t.Fatalf("expected an invalid name to be rejected")
	}
	if names := lib.Names(); !reflect.DeepEqual(names, []string{"house", "tower"}) {
		t.Fatalf("Names() = %v", names)
	}

	lib.Forget("house")
	reloaded, err := lib.Load("house")
	if err != nil {
		t.Fatalf("Load(house): %v", err)
	}
	if reloaded == first || reloaded.ID() != first.ID() {
		t.Fatalf("expected a fresh copy of the same schematic")
	}
}

func TestLibraryConcurrentLoads(t *testing.T) {
	lib := testConfig.NewLibrary(fstest.MapFS{"house.schematic": {Data: encodeNBT(t, houseNBT(), true)}})
	results := make([]*Schematic, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = lib.Load("house")
		}(i)
	}
	wg.Wait()
	for _, s := range results {
		if s == nil || s != results[0] {
			t.Fatalf("expected every caller to get the same schematic")
		}
	}
}
