package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-iplpack/injector"
	"github.com/moffa90/go-iplpack/packager"
)

func newInjectCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inject <bios> <updater> <output>",
		Short: "Put a .gcb or .qbsx image into a Qoob updater",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			biosPath, updaterPath, output := args[0], args[1], args[2]

			f, err := packager.FormatFor(biosPath, nil, 0)
			if err != nil {
				return err
			}
			target, err := injector.TargetFor(f)
			if err != nil {
				return err
			}

			bios, err := os.ReadFile(biosPath)
			if err != nil {
				return fmt.Errorf("could not read BIOS: %w", err)
			}
			updater, err := os.ReadFile(updaterPath)
			if err != nil {
				return fmt.Errorf("could not read updater: %w", err)
			}

			out, err := injector.Inject(updater, bios, target)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"target":       target.Name,
				"image_offset": fmt.Sprintf("0x%X", target.ImageOffset),
				"image_size":   len(bios),
			}).Debug("injected BIOS")

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Injected %s (%d bytes) into %s\n", biosPath, len(bios), output)
			return nil
		},
	}
}
