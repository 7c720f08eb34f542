package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-iplpack/scramble"
)

func newScrambleCmd() *cobra.Command {
	var (
		sx     bool
		offset int
	)

	cmd := &cobra.Command{
		Use:   "scramble <input> <output>",
		Short: "Scramble or descramble a file with the boot ROM cipher",
		Long: "Applies the boot ROM cipher to a whole file. The cipher is its own inverse, " +
			"so the same command scrambles and descrambles.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 {
				return fmt.Errorf("--offset must not be negative")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}

			seed := scramble.Standard
			if sx {
				seed = scramble.QoobSX
			}
			scramble.ApplyAt(data, seed, offset)

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sx, "sx", false, "use the Qoob SX seed")
	cmd.Flags().IntVar(&offset, "offset", 0, "keystream position of the first byte")
	return cmd
}
