package packager

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// digest returns the CIDv1 (raw codec, sha2-256) of data.
func digest(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}
