// Package injector splices a packaged Qoob BIOS into a vendor updater
// executable, so the updater flashes it instead of the stock BIOS.
//
// Only GCB (Qoob Pro) and QBSX (Qoob SX) images can be injected. Each updater
// has a fixed slot for the image and a label shown while flashing.
package injector

import (
	"fmt"

	"github.com/moffa90/go-iplpack/packager"
)

// Target describes where an updater expects its BIOS image.
type Target struct {
	// Name is the format name of the images this target accepts
	Name string

	// Label is the NUL-terminated message shown by the updater
	Label string

	// LabelOffset is the updater offset of the label
	LabelOffset int

	// ImageOffset is the updater offset of the BIOS image
	ImageOffset int

	// MaxImageSize is the largest image the updater can carry
	MaxImageSize int
}

var (
	// QoobPro is the Qoob Pro updater layout.
	QoobPro = Target{
		Name:         packager.GCB{}.Name(),
		Label:        "QOOB Pro iplboot install\x00",
		LabelOffset:  0x1A68,
		ImageOffset:  0x1AE0,
		MaxImageSize: 128 * 1024,
	}

	// QoobSX is the Qoob SX updater layout.
	QoobSX = Target{
		Name:         packager.QBSX{}.Name(),
		Label:        "QOOB SX iplboot install\x00",
		LabelOffset:  7240,
		ImageOffset:  7404,
		MaxImageSize: 62800,
	}
)

// TargetFor returns the updater layout for a packaged format.
func TargetFor(f packager.Format) (Target, error) {
	switch f.(type) {
	case packager.GCB:
		return QoobPro, nil
	case packager.QBSX:
		return QoobSX, nil
	default:
		return Target{}, &packager.UnknownFormatError{Kind: "injectable", Extension: f.Extension()}
	}
}

// Inject returns a copy of updater with bios and the target's label written
// into place. The copy grows when the image extends past the updater's end.
func Inject(updater, bios []byte, target Target) ([]byte, error) {
	if len(bios) > target.MaxImageSize {
		return nil, &packager.CapacityExceededError{
			Format: target.Name,
			Size:   len(bios),
			Max:    target.MaxImageSize,
		}
	}
	if len(updater) < target.ImageOffset {
		return nil, fmt.Errorf("updater too short: got %d bytes, image slot starts at 0x%X",
			len(updater), target.ImageOffset)
	}

	size := max(len(updater), target.ImageOffset+len(bios))
	out := make([]byte, size)
	copy(out, updater)
	copy(out[target.LabelOffset:], target.Label)
	copy(out[target.ImageOffset:], bios)

	return out, nil
}
