package manage_catalog

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

type CatalogEditor interface {
	CreateMaster(ctx context.Context, req *models.CreateMasterRequest) (*domain.Master, error)
	UpdateMaster(ctx context.Context, id string, req *models.UpdateMasterRequest) (*domain.Master, error)
	DeactivateMaster(ctx context.Context, id string) error
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*domain.Service, error)
	DeactivateService(ctx context.Context, id string) error
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
