package packager

import (
	"encoding/binary"
	"hash/crc32"
)

func (f IMG) build(p *Packager, src *Source) (*Result, error) {
	img, err := src.image(f.Name())
	if err != nil {
		return nil, err
	}
	if err := checkFixedAddress(f.Name(), img); err != nil {
		return nil, err
	}

	header := make([]byte, imgHeaderSize, imgHeaderSize+img.Size())
	copy(header[:imgDateSize], p.config.DateTag)
	binary.BigEndian.PutUint32(header[24:], uint32(img.Size()))
	binary.BigEndian.PutUint32(header[28:], crc32.ChecksumIEEE(img.Data))

	return &Result{
		Data:   append(header, img.Data...),
		Report: Report{ImageSize: img.Size()},
	}, nil
}
