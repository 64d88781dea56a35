package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"premiumcalc/internal/models/db_models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestPremiumRecordRepository_Append(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPremiumRecordRepository(db)

	mock.ExpectExec(`INSERT INTO "premium_records"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := &db_models.PremiumRecord{Age: 35, BMI: 24.2, PredictedPremium: 24020}
	require.NoError(t, repo.Append(context.Background(), rec))

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Positive(t, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPremiumRecordRepository_AppendError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPremiumRecordRepository(db)

	mock.ExpectExec(`INSERT INTO "premium_records"`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Append(context.Background(), &db_models.PremiumRecord{Age: 40})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPremiumRecordRepository_ListRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPremiumRecordRepository(db)

	newer, older := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "created_at", "age", "bmi", "predicted_premium"}).
		AddRow(newer.String(), int64(1704164700), 52, 31.5, 28437.5).
		AddRow(older.String(), int64(1704164645), 35, 24.2, 24020.0)

	mock.ExpectQuery(`SELECT \* FROM "premium_records" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer, records[0].ID)
	assert.Equal(t, 52, records[0].Age)
	assert.Equal(t, 28437.5, records[0].PredictedPremium)
	assert.Equal(t, int64(1704164645), records[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
