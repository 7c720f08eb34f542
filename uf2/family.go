package uf2

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned for family names ParseFamily does not know.
var ErrUnknownFamily = errors.New("unknown UF2 family")

var familyNames = map[string]Family{
	"rp2040": FamilyRP2040,
	"rp2350": FamilyRP2350,
	"data":   FamilyData,
}

// ParseFamily maps a family name (rp2040, rp2350, data) to its ID.
func ParseFamily(name string) (Family, error) {
	f, ok := familyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q (must be rp2040, rp2350 or data)", ErrUnknownFamily, name)
	}
	return f, nil
}

func (f Family) String() string {
	switch f {
	case FamilyRP2040:
		return "rp2040"
	case FamilyRP2350:
		return "rp2350"
	case FamilyData:
		return "data"
	default:
		return fmt.Sprintf("0x%08X", uint32(f))
	}
}
