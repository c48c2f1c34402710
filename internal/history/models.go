// Package history persists encoding runs to a relational database so past
// code tables and their budget outcomes can be compared across command-set
// revisions.
package history

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/telemetry-codec/pkg/model"
)

// EncodingRun represents the encoding_runs table. One row per generated
// report, with the aggregate statistics lifted into columns for querying and
// the full report kept as JSON.
type EncodingRun struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SetName     string    `gorm:"column:set_name;type:varchar(128);index"`
	TargetBits  int       `gorm:"column:target_bits"`
	SymbolCount int       `gorm:"column:symbol_count"`
	Commands    int       `gorm:"column:commands"`
	TotalBits   int       `gorm:"column:total_bits"`
	MinBits     int       `gorm:"column:min_bits"`
	MaxBits     int       `gorm:"column:max_bits"`
	AvgBits     float64   `gorm:"column:avg_bits"`
	OverBudget  int       `gorm:"column:over_budget"`
	ReportFile  string    `gorm:"column:report_file;type:varchar(512)"`
	Report      JSONField `gorm:"column:report;type:json"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for EncodingRun.
func (EncodingRun) TableName() string {
	return "encoding_runs"
}

// NewEncodingRun builds an EncodingRun row from a generated report.
func NewEncodingRun(rep *model.Report, reportFile string) (*EncodingRun, error) {
	reportJSON, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}

	return &EncodingRun{
		SetName:     rep.SetName,
		TargetBits:  rep.TargetBits,
		SymbolCount: rep.SymbolCount,
		Commands:    len(rep.Commands),
		TotalBits:   rep.Stats.TotalBits,
		MinBits:     rep.Stats.MinBits,
		MaxBits:     rep.Stats.MaxBits,
		AvgBits:     rep.Stats.AvgBits,
		OverBudget:  rep.Stats.OverBudget,
		ReportFile:  reportFile,
		Report:      JSONField(reportJSON),
	}, nil
}

// ToReport deserializes the stored report.
func (r *EncodingRun) ToReport() (*model.Report, error) {
	if r.Report == nil {
		return nil, errors.New("run has no stored report")
	}

	var rep model.Report
	if err := json.Unmarshal(r.Report, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// JSONField is a custom type for handling JSON columns in GORM.
type JSONField []byte

// Value implements driver.Valuer.
func (j JSONField) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = []byte(v)
		return nil
	default:
		return errors.New("unsupported type for JSONField")
	}
}

// MarshalJSON implements json.Marshaler.
func (j JSONField) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (j *JSONField) UnmarshalJSON(data []byte) error {
	if data == nil || string(data) == "null" {
		*j = nil
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}
