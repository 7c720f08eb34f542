package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-iplpack/packager"
	"github.com/moffa90/go-iplpack/uf2"
)

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var (
		verbose bool
		romPath string
		family  string
	)

	cmd := &cobra.Command{
		Use:   "iplpack <output> <executable> [<IPL ROM>|<family>]",
		Short: "Package a DOL or ELF executable as a bootable IPL image",
		Long: "Flattens a DOL or ELF executable and wraps it for a modchip or flash cart. " +
			"The output extension selects the format: .gcb (Qoob Pro, needs the IPL ROM), " +
			".vgc (ViperGC), .uf2 (PicoBoot, needs a family: rp2040, rp2350 or data), " +
			".qbsx (Qoob SX) or .img (raw IPL image). " +
			"VGC, UF2 and IMG executables must be linked at 0x81300000.",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			output, input := args[0], args[1]
			if len(args) == 3 {
				switch strings.ToLower(filepath.Ext(output)) {
				case ".gcb":
					romPath = args[2]
				case ".uf2":
					family = args[2]
				}
			}
			return runPack(cmd.OutOrStdout(), log, output, input, romPath, family)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&romPath, "rom", "", "IPL ROM dump (required for .gcb)")
	cmd.Flags().StringVar(&family, "family", "", "UF2 family: rp2040, rp2350 or data (required for .uf2)")

	cmd.AddCommand(newInjectCmd(log), newScrambleCmd())
	return cmd
}

func runPack(w io.Writer, log *logrus.Logger, output, input, romPath, family string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	src, err := packager.LoadSource(input, data)
	if err != nil {
		return err
	}

	var rom []byte
	if romPath != "" {
		rom, err = os.ReadFile(romPath)
		if err != nil {
			return fmt.Errorf("could not read IPL ROM: %w", err)
		}
	}

	var fam uf2.Family
	if family != "" {
		fam, err = uf2.ParseFamily(family)
		if err != nil {
			return err
		}
	}

	f, err := packager.FormatFor(output, rom, fam)
	if err != nil {
		return err
	}

	p := packager.New(packager.WithLogger(logrusLogger{log: log}))
	res, err := p.Build(f, src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, res.Data, 0o644); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	printReport(w, output, res.Report)
	return nil
}

func printReport(w io.Writer, output string, r packager.Report) {
	if r.Entry != 0 || r.Load != 0 {
		fmt.Fprintf(w, "Entry point:   0x%08X\n", r.Entry)
		fmt.Fprintf(w, "Load address:  0x%08X\n", r.Load)
	}
	fmt.Fprintf(w, "Image size:    %d bytes (%dK)\n", r.ImageSize, r.ImageSize/1024)
	if r.Pages > 0 {
		fmt.Fprintf(w, "Qoob blocks:   %d\n", r.Pages)
	}
	if r.Blocks > 0 {
		fmt.Fprintf(w, "UF2 blocks:    %d\n", r.Blocks)
	}
	fmt.Fprintf(w, "Output:        %s (%s, %d bytes)\n", output, r.Format, r.Size)
	fmt.Fprintf(w, "Digest:        %s\n", r.Digest)
}
