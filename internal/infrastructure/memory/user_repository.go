package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria, indexado por user_id.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.User)}
}

func (r *UserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[userID]
	return ok, nil
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *UserRepo) Search(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.User
	for _, u := range r.users {
		if filter.Name != "" && !strings.Contains(u.UserName, filter.Name) {
			continue
		}
		if filter.Role != "" && (u.UserRole == nil || *u.UserRole != filter.Role) {
			continue
		}
		if filter.ID != "" && u.UserID != filter.ID {
			continue
		}
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UserID < list[j].UserID })
	return list, nil
}

func (r *UserRepo) Update(ctx context.Context, userID string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil // mismo efecto que un UPDATE sin filas
	}
	updated := *u
	for name, v := range fields {
		var err error
		switch name {
		case "user_name":
			updated.UserName, err = textVal(name, v)
		case "user_role":
			updated.UserRole, err = toText(name, v)
		case "pass_hash":
			updated.PassHash, err = textVal(name, v)
		default:
			err = fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, name)
		}
		if err != nil {
			return err
		}
	}
	r.users[userID] = &updated
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}
