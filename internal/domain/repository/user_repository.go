package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	Search(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)
	Update(ctx context.Context, userID string, fields map[string]any) error
	Delete(ctx context.Context, userID string) error
}
