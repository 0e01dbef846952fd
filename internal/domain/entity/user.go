package entity

// Roles permitidos para un usuario.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa una cuenta del sistema. UserID es inmutable una vez creado.
// PassHash se almacena como cadena opaca; el hashing es responsabilidad del caller
// (ver cmd/hashpass).
type User struct {
	UserID   string  // <= 50 caracteres
	UserName string  // <= 100 caracteres
	UserRole *string // admin | employee, opcional
	PassHash string  // <= 255 caracteres
}

// UserFilter filtros de búsqueda de usuarios. Campos vacíos no filtran.
// Name se compara por subcadena; Role e ID por igualdad exacta.
type UserFilter struct {
	Name string
	Role string
	ID   string
}
