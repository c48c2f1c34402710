package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/telemetry-codec/pkg/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&EncodingRun{}))
	return db
}

func sampleReport(setName string) *model.Report {
	return &model.Report{
		SetName:     setName,
		TargetBits:  32,
		SymbolCount: 3,
		Commands: []model.CommandResult{
			{Index: 0, Short: "aab", Bits: 4, Bytes: 1, WithinBudget: true},
			{Index: 1, Short: "abc", Bits: 5, Bytes: 1, WithinBudget: true},
		},
		Stats: model.ReportStats{
			TotalBits: 9,
			MinBits:   4,
			MaxBits:   5,
			AvgBits:   4.5,
		},
		GeneratedAt: time.Now(),
	}
}

func TestGormRunRepository_SaveRun(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRunRepository(db)
	ctx := context.Background()

	run, err := repo.SaveRun(ctx, sampleReport("sample"), "output/report.json")
	require.NoError(t, err)

	assert.NotZero(t, run.ID)
	assert.Equal(t, "sample", run.SetName)
	assert.Equal(t, 2, run.Commands)
	assert.Equal(t, 9, run.TotalBits)
	assert.Equal(t, "output/report.json", run.ReportFile)

	rep, err := run.ToReport()
	require.NoError(t, err)
	assert.Equal(t, "sample", rep.SetName)
	assert.Len(t, rep.Commands, 2)
}

func TestGormRunRepository_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRunRepository(db)
	ctx := context.Background()

	t.Run("ListRecent_Empty", func(t *testing.T) {
		runs, err := repo.ListRecent(ctx, "", 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("ListRecent_NewestFirst", func(t *testing.T) {
		_, err := repo.SaveRun(ctx, sampleReport("first"), "")
		require.NoError(t, err)
		_, err = repo.SaveRun(ctx, sampleReport("second"), "")
		require.NoError(t, err)

		runs, err := repo.ListRecent(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "second", runs[0].SetName)
		assert.Equal(t, "first", runs[1].SetName)
	})

	t.Run("ListRecent_FilterBySet", func(t *testing.T) {
		runs, err := repo.ListRecent(ctx, "first", 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "first", runs[0].SetName)
	})

	t.Run("ListRecent_Limit", func(t *testing.T) {
		runs, err := repo.ListRecent(ctx, "", 1)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestGormRunRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRunRepository(db)
	ctx := context.Background()

	t.Run("GetByID_NotFound", func(t *testing.T) {
		run, err := repo.GetByID(ctx, 999)
		assert.Error(t, err)
		assert.Nil(t, run)
		assert.Contains(t, err.Error(), "run not found")
	})

	t.Run("GetByID_Success", func(t *testing.T) {
		saved, err := repo.SaveRun(ctx, sampleReport("sample"), "")
		require.NoError(t, err)

		run, err := repo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.SetName, run.SetName)
	})
}
