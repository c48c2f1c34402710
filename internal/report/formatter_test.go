package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telemetry-codec/internal/huffman"
	"github.com/telemetry-codec/internal/testutil"
	"github.com/telemetry-codec/pkg/model"
	"github.com/telemetry-codec/pkg/utils"
)

func sampleReport(t *testing.T, targetBits int) *model.Report {
	t.Helper()
	set := testutil.SampleSet()
	cb, err := huffman.NewCodebook(set.Strings())
	require.NoError(t, err)
	rep, err := NewGenerator(targetBits).Generate(set, cb)
	require.NoError(t, err)
	return rep
}

func TestFormatter_Format(t *testing.T) {
	rep := sampleReport(t, 4)

	var buf bytes.Buffer
	log := utils.NewDefaultLogger(utils.LevelInfo, &buf)
	NewFormatter().Format(rep, log)

	out := buf.String()
	assert.Contains(t, out, "Huffman codes per character (3 symbols)")
	assert.Contains(t, out, "Short form -> comment")
	assert.Contains(t, out, "Encoded commands (target 4 bits)")
	assert.Contains(t, out, "first sample")
	assert.Contains(t, out, "aab")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "OVER")
	assert.Contains(t, out, "1 command(s) exceed the 4-bit target")
}

func TestFormatter_Format_AllWithinBudget(t *testing.T) {
	rep := sampleReport(t, 32)

	var buf bytes.Buffer
	log := utils.NewDefaultLogger(utils.LevelInfo, &buf)
	NewFormatter().Format(rep, log)

	assert.NotContains(t, buf.String(), "exceed")
}

func TestFormatter_FormatSummary(t *testing.T) {
	rep := sampleReport(t, 4)

	summary := NewFormatter().FormatSummary(rep)
	assert.Equal(t, "sample", summary["set_name"])
	assert.Equal(t, 4, summary["target_bits"])
	assert.Equal(t, 3, summary["symbol_count"])
	assert.Equal(t, 2, summary["commands"])
	assert.Equal(t, rep.Stats, summary["stats"])
}
