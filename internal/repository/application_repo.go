package repository

import (
	"context"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

// ApplicationRepository stores submitted applications as a single list under
// one key. Applications are append-only on the device.
type ApplicationRepository interface {
	Append(ctx context.Context, app entity.Application) error
	List(ctx context.Context) ([]entity.Application, error)
	GetByID(ctx context.Context, id string) (*entity.Application, error)
}

// DraftRepository stores one in-progress form draft per property.
type DraftRepository interface {
	Get(ctx context.Context, propertyID string) (*entity.FormDraft, error)
	Save(ctx context.Context, draft *entity.FormDraft) error
	Delete(ctx context.Context, propertyID string) error
}
