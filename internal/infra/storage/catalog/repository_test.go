package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

func TestSaveMaster_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	master := &domain.Master{
		ID:       "anna",
		Name:     "Анна",
		Schedule: domain.DefaultWorkSchedule(),
		IsActive: true,
	}

	mock.ExpectExec("INSERT INTO masters .* ON CONFLICT \\(id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveMaster(context.Background(), master))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveService_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO services").
		WillReturnError(errors.New("connection reset"))

	err = repo.SaveService(context.Background(), &domain.Service{ID: "gel", Name: "Покриття гель-лак"})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMasters_DecodesSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	schedule := []byte(`{"monday":{"start":"09:00","end":"18:00","isWorking":true},"sunday":{"start":"00:00","end":"00:00","isWorking":false}}`)

	rows := sqlmock.NewRows([]string{"id", "name", "specialization", "phone", "color", "schedule", "is_active", "created_at"}).
		AddRow("anna", "Анна", "Манікюр", "0501112233", "#f06292", schedule, true, created)

	mock.ExpectQuery("SELECT (.+) FROM masters ORDER BY created_at, id").
		WillReturnRows(rows)

	masters, err := repo.ListMasters(context.Background())
	require.NoError(t, err)
	require.Len(t, masters, 1)

	assert.Equal(t, "Анна", masters[0].Name)
	assert.True(t, masters[0].Schedule.ForDay(time.Monday).IsWorking)
	assert.Equal(t, "18:00", masters[0].Schedule.Monday.End.String())
	assert.False(t, masters[0].Schedule.ForDay(time.Tuesday).IsWorking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMasters_BrokenSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "specialization", "phone", "color", "schedule", "is_active", "created_at"}).
		AddRow("anna", "Анна", "", "", "", []byte(`not json`), true, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM masters").WillReturnRows(rows)

	_, err = NewRepository(db).ListMasters(context.Background())
	assert.ErrorIs(t, err, ErrSchedule)
}

func TestListServices(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "price", "duration_minutes", "category", "color", "is_active", "created_at"}).
		AddRow("manicure", "Манікюр класичний", int64(350), 60, "Манікюр", "", true, created).
		AddRow("old", "Парафінотерапія", int64(150), 30, "Догляд", "", false, created)
	mock.ExpectQuery("SELECT (.+) FROM services").WillReturnRows(rows)

	services, err := NewRepository(db).ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, int64(350), services[0].Price)
	assert.Equal(t, 60, services[0].DurationMinutes)
	assert.False(t, services[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
