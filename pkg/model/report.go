package model

import "time"

// CodeEntry is one row of the per-character code table.
type CodeEntry struct {
	Symbol  byte   `json:"symbol"`
	Display string `json:"display"` // 'a' for printable bytes, 0xNN otherwise
	Code    string `json:"code"`    // literal bit string
	Len     int    `json:"len"`
	Freq    uint64 `json:"freq"`
}

// CommandResult is the encoding outcome for one command string.
type CommandResult struct {
	Index        int    `json:"index"`
	Short        string `json:"short"`
	Comment      string `json:"comment,omitempty"`
	BitString    string `json:"bit_string"`
	Bits         int    `json:"bits"`
	Bytes        int    `json:"bytes"`
	WithinBudget bool   `json:"within_budget"`
}

// ReportStats aggregates encoded sizes across the whole command set.
type ReportStats struct {
	TotalBits  int     `json:"total_bits"`
	MinBits    int     `json:"min_bits"`
	MaxBits    int     `json:"max_bits"`
	AvgBits    float64 `json:"avg_bits"`
	AvgBytes   float64 `json:"avg_bytes"`
	OverBudget int     `json:"over_budget"`
}

// Report is the full code-table report for one command set.
type Report struct {
	SetName     string          `json:"set_name"`
	TargetBits  int             `json:"target_bits"`
	SymbolCount int             `json:"symbol_count"`
	Alphabet    []CodeEntry     `json:"alphabet"`
	Commands    []CommandResult `json:"commands"`
	Stats       ReportStats     `json:"stats"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// OverBudgetCommands returns the commands whose encoded size exceeds the
// target bit budget.
func (r *Report) OverBudgetCommands() []CommandResult {
	var out []CommandResult
	for _, c := range r.Commands {
		if !c.WithinBudget {
			out = append(out, c)
		}
	}
	return out
}

// AllWithinBudget reports whether every command fits the target bit budget.
func (r *Report) AllWithinBudget() bool {
	return r.Stats.OverBudget == 0
}
