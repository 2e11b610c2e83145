// Package seed начальное наполнение каталога студии из YAML.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogModels "github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Catalog сервис каталога, в который пишется сид
type Catalog interface {
	IsEmpty() bool
	CreateMaster(ctx context.Context, req *catalogModels.CreateMasterRequest) (*domain.Master, error)
	CreateService(ctx context.Context, req *catalogModels.CreateServiceRequest) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// File содержимое seed/catalog.yaml
type File struct {
	Masters  []Master  `yaml:"masters"`
	Services []Service `yaml:"services"`
}

// Master мастер в сиде. Без schedule используется расписание по умолчанию.
type Master struct {
	Name           string         `yaml:"name"`
	Specialization string         `yaml:"specialization"`
	Phone          string         `yaml:"phone"`
	Color          string         `yaml:"color"`
	Schedule       map[string]Day `yaml:"schedule"`
}

// Day рабочее время одного дня
type Day struct {
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Working bool   `yaml:"working"`
}

// Service услуга в сиде
type Service struct {
	Name     string `yaml:"name"`
	Price    int64  `yaml:"price"`
	Duration int    `yaml:"duration"`
	Category string `yaml:"category"`
	Color    string `yaml:"color"`
}

// Load читает YAML файл
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// Apply заполняет пустой каталог. Непустой каталог не трогается.
func Apply(ctx context.Context, f *File, catalog Catalog, logger Logger) error {
	if !catalog.IsEmpty() {
		logger.Info("Seed: catalog is not empty, skipping")
		return nil
	}

	for _, m := range f.Masters {
		req := &catalogModels.CreateMasterRequest{
			Name:           m.Name,
			Specialization: m.Specialization,
			Phone:          m.Phone,
			Color:          m.Color,
		}
		if len(m.Schedule) > 0 {
			schedule, err := m.workSchedule()
			if err != nil {
				return fmt.Errorf("seed master %q: %w", m.Name, err)
			}
			req.Schedule = &schedule
		}
		if _, err := catalog.CreateMaster(ctx, req); err != nil {
			return fmt.Errorf("seed master %q: %w", m.Name, err)
		}
	}

	for _, s := range f.Services {
		if _, err := catalog.CreateService(ctx, &catalogModels.CreateServiceRequest{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.Duration,
			Category:        s.Category,
			Color:           s.Color,
		}); err != nil {
			return fmt.Errorf("seed service %q: %w", s.Name, err)
		}
	}

	logger.Info("Seed: created %d masters and %d services", len(f.Masters), len(f.Services))
	return nil
}

// workSchedule дни, не указанные в сиде, выходные
func (m Master) workSchedule() (domain.WorkSchedule, error) {
	var ws domain.WorkSchedule
	days := map[string]*domain.DaySchedule{
		"monday":    &ws.Monday,
		"tuesday":   &ws.Tuesday,
		"wednesday": &ws.Wednesday,
		"thursday":  &ws.Thursday,
		"friday":    &ws.Friday,
		"saturday":  &ws.Saturday,
		"sunday":    &ws.Sunday,
	}
	for name, d := range m.Schedule {
		target, ok := days[name]
		if !ok {
			return ws, fmt.Errorf("unknown weekday %q", name)
		}
		*target = domain.DaySchedule{
			Start:     types.TimeString(d.Start),
			End:       types.TimeString(d.End),
			IsWorking: d.Working,
		}
	}
	for _, target := range days {
		if !target.IsWorking && target.Start == "" {
			*target = domain.DaySchedule{Start: "00:00", End: "00:00"}
		}
	}
	return ws, nil
}
