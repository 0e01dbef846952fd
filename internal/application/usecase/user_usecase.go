package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El rol se almacena pero no se
// aplica en ningún control de acceso.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario nuevo. Falla con ErrDuplicate si el id ya existe.
// user_role es opcional: ausente se almacena como NULL.
func (uc *UserUseCase) Create(ctx context.Context, data map[string]any) error {
	user := &entity.User{}
	var err error
	if user.UserID, err = reqString(data, "user_id"); err != nil {
		return err
	}
	if user.UserName, err = reqString(data, "user_name"); err != nil {
		return err
	}
	if user.PassHash, err = reqString(data, "pass_hash"); err != nil {
		return err
	}
	if user.UserRole, err = optString(data, "user_role"); err != nil {
		return err
	}

	exists, err := uc.repo.Exists(ctx, user.UserID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicate
	}
	return uc.repo.Create(ctx, user)
}

// Search busca usuarios por los filtros reconocidos.
func (uc *UserUseCase) Search(ctx context.Context, filter entity.UserFilter) ([]dto.UserResponse, error) {
	users, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

// Update aplica una actualización parcial sobre un usuario existente.
// user_id es inmutable; el validador ya rechazó cualquier intento de tocarlo.
func (uc *UserUseCase) Update(ctx context.Context, userID string, data map[string]any) error {
	exists, err := uc.repo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Update(ctx, userID, data)
}

// Delete elimina un usuario existente por id.
func (uc *UserUseCase) Delete(ctx context.Context, userID string) error {
	exists, err := uc.repo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, userID)
}
