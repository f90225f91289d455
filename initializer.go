package schematic

import (
	"github.com/akmalfairuz/df-schematic/internal"
)

// Init should be called after blocks are registered, before schematics are placed in a world.
// We don't use go init() because we want to control the order of initialization.
func Init() {
	internal.ConstructBlockMappings()
}
