package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Exists verifica si ya hay un usuario con ese id.
func (r *UserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM users WHERE user_id = $1`, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists user: %w", err)
	}
	return true, nil
}

// Create persiste un usuario nuevo. UserRole nil se almacena como NULL.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (user_id, user_name, user_role, pass_hash)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, user.UserID, user.UserName, user.UserRole, user.PassHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Search lista usuarios: nombre por subcadena, rol e id por igualdad exacta.
func (r *UserRepo) Search(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	query := `SELECT user_id, user_name, user_role, pass_hash FROM users WHERE 1=1`
	var args []any
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" AND user_name LIKE $%d", len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND user_role = $%d", len(args))
	}
	if filter.ID != "" {
		args = append(args, filter.ID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.UserID, &u.UserName, &u.UserRole, &u.PassHash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update aplica una actualización parcial vía el constructor con allowlist.
// user_id no está en el allowlist: es inmutable.
func (r *UserRepo) Update(ctx context.Context, userID string, fields map[string]any) error {
	query, args, err := buildUpdate("users", userColumns, fields, []string{"user_id"}, []string{userID})
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por id.
func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
