package hanging

import "github.com/df-mc/dragonfly/server/block/cube"

// Facing converts the legacy facing byte of a hanging entity to a face. Unknown codes return
// cube.FaceUp, which no hanging entity can actually face and so marks the facing as unset.
func Facing(code uint8) cube.Face {
	switch code {
	case 0:
		return cube.FaceSouth
	case 1:
		return cube.FaceWest
	case 2:
		return cube.FaceNorth
	case 3:
		return cube.FaceEast
	}
	return cube.FaceUp
}

// FacingCode is the inverse of Facing. Faces without a code return 0xff.
func FacingCode(f cube.Face) uint8 {
	switch f {
	case cube.FaceSouth:
		return 0
	case cube.FaceWest:
		return 1
	case cube.FaceNorth:
		return 2
	case cube.FaceEast:
		return 3
	}
	return 0xff
}
