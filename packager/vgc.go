package packager

func (f VGC) build(p *Packager, src *Source) (*Result, error) {
	img, err := src.image(f.Name())
	if err != nil {
		return nil, err
	}
	if err := checkFixedAddress(f.Name(), img); err != nil {
		return nil, err
	}

	header := make([]byte, 2*vgcFieldSize)
	copy(header[:vgcFieldSize], vgcMagic)
	copy(header[vgcFieldSize:], p.config.ProductTag)

	return &Result{
		Data:   append(header, bootScramble(img.Data)...),
		Report: Report{ImageSize: img.Size()},
	}, nil
}
