package report

import (
	"github.com/telemetry-codec/pkg/model"
	"github.com/telemetry-codec/pkg/utils"
)

// Formatter prints an encoding report through a logger, section by section:
// the per-character code table, the short-form reference, the encoded
// commands with their budget verdict, and the size summary.
type Formatter struct{}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format outputs the whole report.
func (f *Formatter) Format(rep *model.Report, log utils.Logger) {
	f.FormatAlphabet(rep, log)
	f.FormatReference(rep, log)
	f.FormatCommands(rep, log)
	f.FormatStats(rep, log)
}

// FormatAlphabet prints the per-character code table.
func (f *Formatter) FormatAlphabet(rep *model.Report, log utils.Logger) {
	log.Info("=== Huffman codes per character (%d symbols) ===", rep.SymbolCount)
	log.Info("%-6s %-20s %3s %6s", "Char", "Code", "Len", "Freq")
	for _, e := range rep.Alphabet {
		log.Info("%-6s %-20s %3d %6d", e.Display, e.Code, e.Len, e.Freq)
	}
	log.Info("")
}

// FormatReference prints the short form to comment mapping.
func (f *Formatter) FormatReference(rep *model.Report, log utils.Logger) {
	log.Info("=== Short form -> comment ===")
	log.Info("%-14s %s", "Short", "Comment")
	for _, c := range rep.Commands {
		log.Info("%-14s %s", c.Short, c.Comment)
	}
	log.Info("")
}

// FormatCommands prints each command's encoded bits and budget verdict.
func (f *Formatter) FormatCommands(rep *model.Report, log utils.Logger) {
	log.Info("=== Encoded commands (target %d bits) ===", rep.TargetBits)
	log.Info("%-4s %-14s %-44s %6s %6s  %s", "Idx", "Command", "Bit string", "Bits", "Bytes", "OK/OVER")
	for _, c := range rep.Commands {
		verdict := "OK"
		if !c.WithinBudget {
			verdict = "OVER"
		}
		log.Info("%-4d %-14s %-44s %6d %6d  %s", c.Index, c.Short, c.BitString, c.Bits, c.Bytes, verdict)
	}
	log.Info("")
}

// FormatStats prints the aggregate size summary.
func (f *Formatter) FormatStats(rep *model.Report, log utils.Logger) {
	s := rep.Stats
	log.Info("=== Summary (target %d bits / %d bytes max) ===", rep.TargetBits, (rep.TargetBits+7)/8)
	log.Info("Per command:  min %d bits (%d byte(s)), max %d bits (%d byte(s))",
		s.MinBits, (s.MinBits+7)/8, s.MaxBits, (s.MaxBits+7)/8)
	log.Info("Average:      %.2f bits, %.2f bytes (per command)", s.AvgBits, s.AvgBytes)
	if s.OverBudget > 0 {
		log.Warn("%d command(s) exceed the %d-bit target", s.OverBudget, rep.TargetBits)
	}
}

// FormatSummary returns a summary map for serialization.
func (f *Formatter) FormatSummary(rep *model.Report) map[string]interface{} {
	return map[string]interface{}{
		"set_name":     rep.SetName,
		"target_bits":  rep.TargetBits,
		"symbol_count": rep.SymbolCount,
		"commands":     len(rep.Commands),
		"stats":        rep.Stats,
		"generated_at": rep.GeneratedAt,
	}
}
