package packager

import (
	"encoding/binary"
	"fmt"

	"github.com/moffa90/go-iplpack/uf2"
)

func (f UF2) build(p *Packager, src *Source) (*Result, error) {
	if f.Family == 0 {
		return nil, &MissingDependencyError{Format: f.Name(), Dependency: "UF2 family"}
	}

	img, err := src.image(f.Name())
	if err != nil {
		return nil, err
	}
	if err := checkFixedAddress(f.Name(), img); err != nil {
		return nil, err
	}

	body := bootScramble(img.Data)
	body = padTo(body, alignUp(len(body), uf2Align))
	body = append(body, uf2Trailer...)

	payload := make([]byte, uf2HeaderSize, uf2HeaderSize+len(body))
	copy(payload, uf2Magic)
	binary.BigEndian.PutUint32(payload[len(uf2Magic):], uint32(uf2HeaderSize+len(body)))
	payload = append(payload, body...)

	p.logDebug("encoding uf2",
		"family", f.Family.String(),
		"base", fmt.Sprintf("0x%08X", p.config.UF2Base),
		"payload_size", len(payload),
	)

	return &Result{
		Data: uf2.Encode(payload, p.config.UF2Base, f.Family),
		Report: Report{
			ImageSize: img.Size(),
			Blocks:    uf2.NumBlocks(len(payload)),
		},
	}, nil
}
