package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCarRepository creates a GormCarRepository with a mocked SQL connection
func newMockCarRepository(t *testing.T) (*GormCarRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCarRepository(gormDB), mock, mockDB
}

func TestGormCarRepository_FindByID(t *testing.T) {
	t.Run("finds existing car", func(t *testing.T) {
		repo, mock, mockDB := newMockCarRepository(t)
		defer mockDB.Close()

		carID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "slug", "brand", "model", "year", "price", "is_sold", "commission"}).
			AddRow(carID, "honda-civic-2020", "Honda", "Civic", 2020, "98000.00", false, "3000.00")

		mock.ExpectQuery(`SELECT \* FROM "cars" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(carID, 1).
			WillReturnRows(rows)

		car, err := repo.FindByID(context.Background(), carID)

		require.NoError(t, err)
		assert.Equal(t, carID, car.ID)
		assert.Equal(t, "Honda", car.Brand)
		assert.True(t, car.Price.Equal(decimal.NewFromInt(98000)))
		require.NotNil(t, car.Commission)
		assert.True(t, car.Commission.Equal(decimal.NewFromInt(3000)))
		assert.Nil(t, car.FipeValue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCarRepository(t)
		defer mockDB.Close()

		carID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "cars" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(carID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		car, err := repo.FindByID(context.Background(), carID)

		assert.Nil(t, car)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCarRepository_UpdateFinance(t *testing.T) {
	fipe := decimal.NewFromInt(50000)
	commission := decimal.NewFromInt(3000)
	patch := catalog.FinancePatch{
		FipeValue:  &fipe,
		Commission: &commission,
		Profit:     decimal.NewFromInt(2500),
	}

	t.Run("writes finance columns and clears profit_percent", func(t *testing.T) {
		repo, mock, mockDB := newMockCarRepository(t)
		defer mockDB.Close()

		carID := uuid.New()
		mock.ExpectExec(`UPDATE "cars" SET "commission"=\$1,"fipe_value"=\$2,"profit"=\$3,"profit_percent"=\$4,"return_to_seller"=\$5,"updated_at"=\$6 WHERE id = \$7`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg(), carID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFinance(context.Background(), carID, patch)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockCarRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "cars" SET .* WHERE id = \$7`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateFinance(context.Background(), uuid.New(), patch)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo, mock, mockDB := newMockCarRepository(t)
		defer mockDB.Close()

		boom := errors.New("connection reset")
		mock.ExpectExec(`UPDATE "cars" SET .*`).WillReturnError(boom)

		err := repo.UpdateFinance(context.Background(), uuid.New(), patch)

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCarRepository_ListInStock(t *testing.T) {
	repo, mock, mockDB := newMockCarRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "brand", "is_sold"}).
		AddRow(uuid.New(), "Fiat", false).
		AddRow(uuid.New(), "VW", false)

	mock.ExpectQuery(`SELECT \* FROM "cars" WHERE is_sold = \$1 AND \(is_available IS NULL OR is_available = \$2\) ORDER BY is_featured DESC, created_at DESC`).
		WithArgs(false, true).
		WillReturnRows(rows)

	cars, err := repo.ListInStock(context.Background())

	require.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
