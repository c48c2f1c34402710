package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telemetry-codec/internal/huffman"
)

var (
	// Encode command flags
	encodeCommandFile string
	encodeTargetBits  int
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <string>...",
	Short: "Encode strings against a command set's code table",
	Long: `Build the Huffman codebook for a command set and encode the given strings
against it. Each string is printed with its bit string, bit and byte sizes,
and whether it fits the target bit budget.

Strings containing a character that never occurs in the command set are
reported and skipped; the remaining strings are still encoded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encodeCommandFile, "file", "f", "", "Command file (built-in set if empty)")
	encodeCmd.Flags().IntVar(&encodeTargetBits, "target-bits", 0, "Per-command bit budget (config default if 0)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	set, err := loadSet(encodeCommandFile)
	if err != nil {
		return err
	}

	targetBits := encodeTargetBits
	if targetBits <= 0 {
		targetBits = cfg.Codec.TargetBits
	}

	cb, err := huffman.NewCodebook(set.Strings())
	if err != nil {
		return fmt.Errorf("build codebook: %w", err)
	}
	if cb.Empty() {
		return fmt.Errorf("command set %q produced no symbols", set.Name)
	}

	enc, err := huffman.NewCachedEncoder(cb, cfg.Codec.CacheSize)
	if err != nil {
		return err
	}

	log.Info("%-14s %-44s %6s %6s  %s", "String", "Bit string", "Bits", "Bytes", "OK/OVER")
	failed := 0
	for _, s := range args {
		bits, err := enc.BitString(s)
		if err != nil {
			if errors.Is(err, huffman.ErrUnknownSymbol) {
				log.Warn("%-14s cannot encode: %v", s, err)
				failed++
				continue
			}
			return err
		}
		verdict := "OK"
		if len(bits) > targetBits {
			verdict = "OVER"
		}
		log.Info("%-14s %-44s %6d %6d  %s", s, bits, len(bits), (len(bits)+7)/8, verdict)
	}
	if failed > 0 {
		log.Warn("%d of %d string(s) could not be encoded", failed, len(args))
	}
	return nil
}
