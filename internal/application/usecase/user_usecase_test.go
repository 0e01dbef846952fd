package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func userPayload(id string) map[string]any {
	return map[string]any{
		"user_id":   id,
		"user_name": "Juan Pérez",
		"pass_hash": "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestUserUseCase_CicloDeVida(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	require.NoError(t, uc.Create(ctx, userPayload("jperez")))

	err := uc.Create(ctx, userPayload("jperez"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	users, err := uc.Search(ctx, entity.UserFilter{ID: "jperez"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "jperez", users[0].UserID)
	assert.Equal(t, "Juan Pérez", users[0].UserName)
	// Sin rol en el alta, el rol queda nulo.
	assert.Nil(t, users[0].UserRole)

	require.NoError(t, uc.Update(ctx, "jperez", map[string]any{"user_role": "admin"}))
	users, err = uc.Search(ctx, entity.UserFilter{ID: "jperez"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].UserRole)
	assert.Equal(t, "admin", *users[0].UserRole)

	require.NoError(t, uc.Delete(ctx, "jperez"))
	users, err = uc.Search(ctx, entity.UserFilter{ID: "jperez"})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserUseCase_RolEnElAlta(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	data := userPayload("admin1")
	data["user_role"] = "admin"
	require.NoError(t, uc.Create(ctx, data))

	users, err := uc.Search(ctx, entity.UserFilter{Role: "admin"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin1", users[0].UserID)

	// Los usuarios sin rol no aparecen al filtrar por rol.
	require.NoError(t, uc.Create(ctx, userPayload("sinrol")))
	users, err = uc.Search(ctx, entity.UserFilter{Role: "employee"})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserUseCase_OperacionesSobreUsuarioInexistente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	err := uc.Update(ctx, "nadie", map[string]any{"user_name": "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
