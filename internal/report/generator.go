// Package report turns a command set and its Huffman codebook into a
// printable encoding report.
package report

import (
	"fmt"

	"github.com/telemetry-codec/internal/commands"
	"github.com/telemetry-codec/internal/huffman"
	"github.com/telemetry-codec/pkg/config"
	apperrors "github.com/telemetry-codec/pkg/errors"
	"github.com/telemetry-codec/pkg/model"
	"github.com/telemetry-codec/pkg/utils"
)

// Generator builds encoding reports against a per-command bit budget.
type Generator struct {
	targetBits int
	clock      utils.Clock
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock sets a custom clock for testability.
func WithClock(clock utils.Clock) GeneratorOption {
	return func(g *Generator) {
		g.clock = clock
	}
}

// NewGenerator creates a Generator. A target of 0 or less selects the
// default budget.
func NewGenerator(targetBits int, opts ...GeneratorOption) *Generator {
	g := &Generator{
		targetBits: targetBits,
		clock:      utils.NewRealClock(),
	}
	if g.targetBits <= 0 {
		g.targetBits = config.DefaultTargetBits
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the full report for a command set: the per-character code
// table, each command's encoded form and size, and aggregate statistics.
func (g *Generator) Generate(set *commands.Set, cb *huffman.Codebook) (*model.Report, error) {
	if cb.Empty() {
		return nil, apperrors.New(apperrors.CodeEmptyAlphabet,
			fmt.Sprintf("command set %q produced no symbols", set.Name))
	}

	rep := &model.Report{
		SetName:     set.Name,
		TargetBits:  g.targetBits,
		SymbolCount: cb.SymbolCount(),
		GeneratedAt: g.clock.Now(),
	}

	for _, b := range cb.Symbols() {
		c := cb.Code(b)
		rep.Alphabet = append(rep.Alphabet, model.CodeEntry{
			Symbol:  b,
			Display: displaySymbol(b),
			Code:    huffman.CodeString(c),
			Len:     c.Len,
			Freq:    cb.Frequency(b),
		})
	}

	totalBits := 0
	minBits, maxBits := 0, 0
	overBudget := 0
	for i, e := range set.Entries {
		bitStr, err := cb.BitString(e.Short)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeUnknownSymbol,
				fmt.Sprintf("encode command %q", e.Short), err)
		}
		bits := len(bitStr)
		within := bits <= g.targetBits
		if !within {
			overBudget++
		}
		rep.Commands = append(rep.Commands, model.CommandResult{
			Index:        i,
			Short:        e.Short,
			Comment:      e.Comment,
			BitString:    bitStr,
			Bits:         bits,
			Bytes:        (bits + 7) / 8,
			WithinBudget: within,
		})

		totalBits += bits
		if i == 0 || bits < minBits {
			minBits = bits
		}
		if bits > maxBits {
			maxBits = bits
		}
	}

	rep.Stats = model.ReportStats{
		TotalBits:  totalBits,
		MinBits:    minBits,
		MaxBits:    maxBits,
		OverBudget: overBudget,
	}
	if n := len(set.Entries); n > 0 {
		rep.Stats.AvgBits = float64(totalBits) / float64(n)
		rep.Stats.AvgBytes = float64(totalBits) / (8.0 * float64(n))
	}
	return rep, nil
}

// displaySymbol renders a byte for the code table: quoted for printable
// ASCII, hex otherwise.
func displaySymbol(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("0x%02X", b)
}
