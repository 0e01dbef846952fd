package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserResponse salida de un usuario en la búsqueda. PassHash viaja tal cual
// se almacenó: es una cadena opaca que el caller ya trató como secreto.
type UserResponse struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	UserRole *string `json:"user_role"`
	PassHash string  `json:"pass_hash"`
}

// FromUser convierte la entidad a su representación de API.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		UserName: u.UserName,
		UserRole: u.UserRole,
		PassHash: u.PassHash,
	}
}

// FromUsers convierte la lista completa.
func FromUsers(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
