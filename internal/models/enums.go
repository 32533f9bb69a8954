package models

import (
	"fmt"
	"strings"
)

// CropType mixes two numbering families: terrestrial crops from 0 and
// aquatic stock from 10000.
type CropType int

const (
	CropBarley CropType = iota
	CropCorn
	CropWheat
)

const (
	CropSalmon CropType = iota + 10000
	CropTrout
	CropEels
)

func (t CropType) String() string {
	switch t {
	case CropBarley:
		return "barley"
	case CropCorn:
		return "corn"
	case CropWheat:
		return "wheat"
	case CropSalmon:
		return "salmon"
	case CropTrout:
		return "trout"
	case CropEels:
		return "eels"
	}
	return fmt.Sprintf("CropType(%d)", int(t))
}

// CropCategory is not tied to CropType; nothing keeps the two consistent.
type CropCategory int

const (
	CategoryCereal CropCategory = iota
	CategoryFish
)

func (c CropCategory) String() string {
	switch c {
	case CategoryCereal:
		return "cereal"
	case CategoryFish:
		return "fish"
	}
	return fmt.Sprintf("CropCategory(%d)", int(c))
}

// Chemicals is a set of chemical flags combined with Union.
type Chemicals uint

const ChemicalNone Chemicals = 0

const (
	ChemicalAntibiotics Chemicals = 1 << iota
	ChemicalPesticides
	ChemicalWeedkillers
	ChemicalRadioactiveWaste
)

var chemicalNames = []struct {
	flag Chemicals
	name string
}{
	{ChemicalAntibiotics, "antibiotics"},
	{ChemicalPesticides, "pesticides"},
	{ChemicalWeedkillers, "weedkillers"},
	{ChemicalRadioactiveWaste, "radioactive_waste"},
}

// Union returns c with every flag of others added.
func (c Chemicals) Union(others ...Chemicals) Chemicals {
	for _, o := range others {
		c |= o
	}
	return c
}

// Contains reports whether all bits of flag are set in c.
func (c Chemicals) Contains(flag Chemicals) bool {
	return c&flag == flag
}

// Flags lists the known flags set in c, lowest bit first.
func (c Chemicals) Flags() []Chemicals {
	var flags []Chemicals
	for _, n := range chemicalNames {
		if c.Contains(n.flag) {
			flags = append(flags, n.flag)
		}
	}
	return flags
}

func (c Chemicals) String() string {
	if c == ChemicalNone {
		return "none"
	}

	var parts []string
	rest := c
	for _, n := range chemicalNames {
		if c.Contains(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint(rest)))
	}
	return strings.Join(parts, "|")
}
