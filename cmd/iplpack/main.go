// Command iplpack packages console executables as bootable IPL images.
//
// Usage:
//
//	iplpack <output> <executable> [<IPL ROM>|<family>]
//	iplpack inject <bios> <updater> <output>
//	iplpack scramble <input> <output> [--sx] [--offset n]
//
// The output extension selects the format (.gcb, .vgc, .uf2, .qbsx, .img).
// GCB images need the console IPL ROM, UF2 images a family (rp2040, rp2350
// or data).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	if err := newRootCmd(log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
