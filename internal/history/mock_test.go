package history

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB wires GORM's MySQL dialector over a sqlmock connection so
// query shapes can be verified without a real server.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestGormRunRepository_ListRecent_MySQL(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormRunRepository(gdb)

	rows := sqlmock.NewRows([]string{
		"id", "set_name", "target_bits", "symbol_count", "commands",
		"total_bits", "min_bits", "max_bits", "avg_bits", "over_budget",
	}).AddRow(
		int64(7), "vehicle-control", 32, 26, 48,
		1024, 12, 31, 21.3, 0,
	)

	mock.ExpectQuery("SELECT \\* FROM `encoding_runs` WHERE set_name = \\?").
		WithArgs("vehicle-control", 10).
		WillReturnRows(rows)

	runs, err := repo.ListRecent(context.Background(), "vehicle-control", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(7), runs[0].ID)
	assert.Equal(t, 48, runs[0].Commands)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRunRepository_GetByID_MySQL(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormRunRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `encoding_runs` WHERE id = \\?").
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "set_name"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
}
