package hanging

import "strings"

// Motif is the picture shown by a painting.
type Motif uint8

const (
	MotifKebab Motif = iota
	MotifAztec
	MotifAlban
	MotifAztec2
	MotifBomb
	MotifPlant
	MotifWasteland
	MotifPool
	MotifCourbet
	MotifSea
	MotifSunset
	MotifCreebet
	MotifWanderer
	MotifGraham
	MotifMatch
	MotifBust
	MotifStage
	MotifVoid
	MotifSkullAndRoses
	MotifWither
	MotifFighters
	MotifPointer
	MotifPigscene
	MotifBurningSkull
	MotifSkeleton
	MotifDonkeyKong
)

// DefaultMotif is used for paintings whose motive is not in the catalog. It is the first
// catalog entry, not Alban, which Bukkit servers fall back to.
const DefaultMotif = MotifKebab

var motifNames = [...]string{
	"kebab", "aztec", "alban", "aztec2", "bomb", "plant", "wasteland", "pool", "courbet",
	"sea", "sunset", "creebet", "wanderer", "graham", "match", "bust", "stage", "void",
	"skull_and_roses", "wither", "fighters", "pointer", "pigscene", "burning_skull",
	"skeleton", "donkey_kong",
}

// Motifs returns every motif in catalog order.
func Motifs() []Motif {
	m := make([]Motif, len(motifNames))
	for i := range m {
		m[i] = Motif(i)
	}
	return m
}

// String ...
func (m Motif) String() string {
	if int(m) >= len(motifNames) {
		return motifNames[DefaultMotif]
	}
	return motifNames[m]
}

// Valid reports whether the motif is part of the catalog.
func (m Motif) Valid() bool {
	return int(m) < len(motifNames)
}

// MotifByName matches a painting motive against the catalog. Both sides are compared
// lower-cased and without underscores, so "SkullAndRoses" and "skull_and_roses" both match.
// The first match wins; unknown motives return DefaultMotif and false.
func MotifByName(name string) (Motif, bool) {
	want := normaliseMotif(name)
	for _, m := range Motifs() {
		if normaliseMotif(motifNames[m]) == want {
			return m, true
		}
	}
	return DefaultMotif, false
}

func normaliseMotif(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "")
}
