package schematic

import (
	"fmt"
	"github.com/akmalfairuz/df-schematic/hanging"
	"github.com/akmalfairuz/df-schematic/record"
	"github.com/go-gl/mathgl/mgl64"
)

func decodePainting(rec record.Record, pos mgl64.Vec3) (hanging.Entity, error) {
	motive, _, err := record.String(rec, "Motive")
	if err != nil {
		return nil, err
	}
	motif, _ := hanging.MotifByName(motive)
	facing, _, err := record.Byte(rec, "Facing")
	if err != nil {
		return nil, err
	}
	return hanging.NewPainting(pos, motif, hanging.Facing(facing)), nil
}

func decodeItemFrame(rec record.Record, pos mgl64.Vec3) (hanging.Entity, error) {
	facing, _, err := record.Byte(rec, "Facing")
	if err != nil {
		return nil, err
	}
	rotation, _, err := record.Byte(rec, "ItemRotation")
	if err != nil {
		return nil, err
	}
	var it hanging.ItemStack
	payload, ok, err := record.Compound(rec, "Item")
	if err != nil {
		return nil, err
	}
	if ok {
		if it, err = hanging.DecodeItem(payload); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
	}
	return hanging.NewItemFrame(pos, it, hanging.Facing(facing), hanging.RotationFromCode(rotation)), nil
}
