package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestLoad_BundledCatalog(t *testing.T) {
	f, err := Load("../../../seed/catalog.yaml")
	require.NoError(t, err)

	require.Len(t, f.Masters, 2)
	require.Len(t, f.Services, 6)
	assert.Equal(t, "Манікюр класичний", f.Services[0].Name)
	assert.Equal(t, int64(350), f.Services[0].Price)
	assert.Equal(t, 90, f.Services[1].Duration)
}

func TestApply(t *testing.T) {
	f, err := Parse([]byte(`
masters:
  - name: Анна
  - name: Богдана
    schedule:
      monday: {start: "10:00", end: "19:00", working: true}
services:
  - {name: Манікюр класичний, price: 350, duration: 60, category: Манікюр}
`))
	require.NoError(t, err)

	ctx := context.Background()
	log := logger.NewNop()
	cat := catalog.NewService(memory.Discard{}, log)

	require.NoError(t, Apply(ctx, f, cat, log))

	masters := cat.ListMasters(ctx, false)
	require.Len(t, masters, 2)
	assert.True(t, masters[0].Schedule.ForDay(time.Saturday).IsWorking, "default schedule")

	bohdana := masters[1].Schedule
	assert.Equal(t, "10:00", bohdana.Monday.Start.String())
	assert.False(t, bohdana.ForDay(time.Tuesday).IsWorking)
	assert.Len(t, cat.ListServices(ctx, true), 1)

	// второй запуск ничего не добавляет
	require.NoError(t, Apply(ctx, f, cat, log))
	assert.Len(t, cat.ListMasters(ctx, false), 2)
}

func TestApply_Invalid(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()

	f, err := Parse([]byte(`
masters:
  - name: Анна
    schedule:
      funday: {start: "10:00", end: "19:00", working: true}
`))
	require.NoError(t, err)
	assert.Error(t, Apply(ctx, f, catalog.NewService(memory.Discard{}, log), log))

	f, err = Parse([]byte(`
services:
  - {name: Манікюр, price: 350, duration: 0}
`))
	require.NoError(t, err)
	assert.Error(t, Apply(ctx, f, catalog.NewService(memory.Discard{}, log), log))
}
