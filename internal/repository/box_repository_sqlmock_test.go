package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBoxRepository wires a BoxRepository onto a mocked SQL connection so
// the emitted queries can be asserted against the postgres dialect.
func newMockBoxRepository(t *testing.T) (BoxRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewBoxRepository(gormDB), mock, mockDB
}

func TestBoxRepository_FindAllNewestFirst_Query(t *testing.T) {
	repo, mock, mockDB := newMockBoxRepository(t)
	defer mockDB.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "location", "category", "description", "created_at"}).
		AddRow(2, "Recent", "Garage", "Hardware", "", now).
		AddRow(1, "Old", "Attic", "Misc", "", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "boxes" WHERE "boxes"\."deleted_at" IS NULL ORDER BY created_at DESC`).
		WillReturnRows(rows)

	boxes, err := repo.FindAllNewestFirst()

	assert.NoError(t, err)
	assert.Len(t, boxes, 2)
	assert.Equal(t, "Recent", boxes[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
