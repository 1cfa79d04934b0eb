package sand

import "image/color"

// Element names the substance occupying one grid cell. The enumeration is
// closed and the numeric values are stable: snapshots store one byte per
// cell, so reordering would corrupt old saves.
type Element uint8

const (
	Background Element = iota
	Wall
	Sand
	Water
	Fire
	Salt
	Oil
	Rock
	Ice
	Lava
	Steam
	SaltWater
	Plant
	Gunpowder
	Wax
	Concrete
	Nitro
	Napalm
	C4
	Fuse
	Acid
	Cryo
	Methane
	Soil
	WetSoil
	Thermite
	Spout
	Well
	Torch
	Branch
	Leaf
	Pollen
	FallingWax
	ChilledIce
	Mystery
	ChargedNitro
	BurningThermite
	RainbowSand

	// NumElements is one past the last valid tag.
	NumElements
)

var elementNames = [NumElements]string{
	Background:      "background",
	Wall:            "wall",
	Sand:            "sand",
	Water:           "water",
	Fire:            "fire",
	Salt:            "salt",
	Oil:             "oil",
	Rock:            "rock",
	Ice:             "ice",
	Lava:            "lava",
	Steam:           "steam",
	SaltWater:       "salt-water",
	Plant:           "plant",
	Gunpowder:       "gunpowder",
	Wax:             "wax",
	Concrete:        "concrete",
	Nitro:           "nitro",
	Napalm:          "napalm",
	C4:              "c4",
	Fuse:            "fuse",
	Acid:            "acid",
	Cryo:            "cryo",
	Methane:         "methane",
	Soil:            "soil",
	WetSoil:         "wet-soil",
	Thermite:        "thermite",
	Spout:           "spout",
	Well:            "well",
	Torch:           "torch",
	Branch:          "branch",
	Leaf:            "leaf",
	Pollen:          "pollen",
	FallingWax:      "falling-wax",
	ChilledIce:      "chilled-ice",
	Mystery:         "mystery",
	ChargedNitro:    "charged-nitro",
	BurningThermite: "burning-thermite",
	RainbowSand:     "rainbow-sand",
}

// String returns the element's lowercase name.
func (e Element) String() string {
	if e >= NumElements {
		return "unknown"
	}
	return elementNames[e]
}

// ElementNames lists every valid element name in tag order.
func ElementNames() []string {
	names := make([]string, NumElements)
	for i := range names {
		names[i] = Element(i).String()
	}
	return names
}

// ParseElement resolves a name to its tag. The second result reports whether
// the name matched; fuzzy matching lives in the config layer, not here.
func ParseElement(name string) (Element, bool) {
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return Background, false
}

// IsLiquid reports whether the element flows and participates in
// liquid-density swaps.
func (e Element) IsLiquid() bool {
	switch e {
	case Water, Oil, SaltWater, Nitro, Napalm, Acid:
		return true
	}
	return false
}

// IsPowder reports whether the element falls grain-by-grain like sand.
func (e Element) IsPowder() bool {
	switch e {
	case Sand, Salt, Gunpowder, Soil, WetSoil, Thermite, Pollen, Mystery, ChargedNitro, RainbowSand:
		return true
	}
	return false
}

// SpigotValid reports whether a spigot may feed this element: anything
// gravity moves, so the band drains instead of clogging the top rows.
func (e Element) SpigotValid() bool {
	switch e {
	case Background, Wall, Fire, Ice, Steam, Plant, Wax, Fuse, C4, Cryo,
		Methane, Spout, Well, Torch, Branch, Leaf, FallingWax, ChilledIce,
		BurningThermite:
		return false
	}
	return e < NumElements
}

// SpigotElements lists every element a spigot may be configured with.
func SpigotElements() []Element {
	out := make([]Element, 0, 19)
	for e := Element(0); e < NumElements; e++ {
		if e.SpigotValid() {
			out = append(out, e)
		}
	}
	return out
}

var elementColors = [NumElements]color.RGBA{
	Background:      {0, 0, 0, 255},
	Wall:            {127, 127, 127, 255},
	Sand:            {223, 193, 99, 255},
	Water:           {0, 10, 255, 255},
	Fire:            {255, 0, 10, 255},
	Salt:            {253, 253, 253, 255},
	Oil:             {150, 60, 0, 255},
	Rock:            {68, 40, 8, 255},
	Ice:             {161, 232, 255, 255},
	Lava:            {245, 110, 40, 255},
	Steam:           {195, 214, 235, 255},
	SaltWater:       {127, 175, 255, 255},
	Plant:           {0, 220, 0, 255},
	Gunpowder:       {170, 170, 140, 255},
	Wax:             {239, 225, 211, 255},
	Concrete:        {180, 180, 180, 255},
	Nitro:           {0, 150, 26, 255},
	Napalm:          {220, 128, 70, 255},
	C4:              {240, 230, 150, 255},
	Fuse:            {219, 175, 199, 255},
	Acid:            {157, 240, 40, 255},
	Cryo:            {0, 213, 255, 255},
	Methane:         {140, 140, 140, 255},
	Soil:            {120, 75, 33, 255},
	WetSoil:         {70, 35, 10, 255},
	Thermite:        {195, 140, 70, 255},
	Spout:           {117, 189, 252, 255},
	Well:            {131, 11, 28, 255},
	Torch:           {200, 5, 0, 255},
	Branch:          {166, 128, 100, 255},
	Leaf:            {82, 107, 45, 255},
	Pollen:          {230, 235, 110, 255},
	FallingWax:      {240, 225, 211, 255},
	ChilledIce:      {20, 153, 220, 255},
	Mystery:         {162, 232, 196, 255},
	ChargedNitro:    {245, 98, 78, 255},
	BurningThermite: {255, 130, 130, 255},
	RainbowSand:     {223, 193, 99, 255},
}

// Color returns the element's base display color. RainbowSand's actual hue
// comes from the world's placement counter; this is its fallback tint.
func (e Element) Color() color.RGBA {
	if e >= NumElements {
		return elementColors[Background]
	}
	return elementColors[e]
}
