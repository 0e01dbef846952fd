package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var userRequiredFields = []string{"user_id", "user_name", "pass_hash"}

// userReadParams parámetros de búsqueda reconocidos para usuarios.
var userReadParams = []string{"user_name", "user_role", "user_id"}

var allowedRoles = []string{entity.RoleAdmin, entity.RoleEmployee}

func roleAllowed(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	for _, r := range allowedRoles {
		if s == r {
			return true
		}
	}
	return false
}

// CreateUser valida el alta de un usuario: identificador, nombre y hash
// presentes y no nulos, topes de longitud 50/100/255, rol dentro del enum si
// viene, y nombre no vacío tras recortar espacios.
func CreateUser(data map[string]any) *Error {
	if missing := missingKeys(data, userRequiredFields, false); len(missing) > 0 {
		return fail("Missing required fields", missing...)
	}

	userID, ok := asString(data["user_id"])
	if !ok {
		return fail("Invalid value for user_id")
	}
	if utf8.RuneCountInString(userID) > 50 {
		return fail("user_id exceeds maximum length of 50 characters")
	}
	userName, ok := asString(data["user_name"])
	if !ok {
		return fail("Invalid value for user_name")
	}
	// Los topes cuentan caracteres, no bytes (igual que VARCHAR(n)).
	if utf8.RuneCountInString(userName) > 100 {
		return fail("user_name exceeds maximum length of 100 characters")
	}
	passHash, ok := asString(data["pass_hash"])
	if !ok {
		return fail("Invalid value for pass_hash")
	}
	if utf8.RuneCountInString(passHash) > 255 {
		return fail("pass_hash exceeds maximum length of 255 characters")
	}
	if v, present := data["user_role"]; present && !roleAllowed(v) {
		return fail(fmt.Sprintf("Invalid user_role. Allowed values: %s", joinFields(allowedRoles)))
	}
	if strings.TrimSpace(userName) == "" {
		return fail("user_name cannot be empty or whitespace")
	}
	return nil
}

// ReadUserParams valida los parámetros de búsqueda de usuarios.
func ReadUserParams(params map[string]string) *Error {
	if len(params) == 0 {
		return fail("Provide at least one search parameter")
	}
	if invalid := invalidKeys(params, userReadParams); len(invalid) > 0 {
		return fail(fmt.Sprintf("Invalid query parameter(s): %s", joinFields(invalid)), invalid...)
	}
	return nil
}

// UpdateUser valida una actualización parcial de usuario. user_id es inmutable
// y cualquier intento de tocarlo rechaza la petición completa.
func UpdateUser(data map[string]any) *Error {
	if len(data) == 0 {
		return fail("No update fields provided")
	}
	if _, present := data["user_id"]; present {
		return fail("user_id cannot be updated (immutable field)")
	}
	if v, present := data["user_role"]; present && !roleAllowed(v) {
		return fail(fmt.Sprintf("Invalid user_role. Allowed values: %s", joinFields(allowedRoles)))
	}
	if v, present := data["user_name"]; present {
		s, ok := asString(v)
		if !ok || strings.TrimSpace(s) == "" {
			return fail("user_name cannot be empty or whitespace")
		}
	}
	if v, present := data["pass_hash"]; present {
		s, ok := asString(v)
		if !ok || utf8.RuneCountInString(s) > 255 {
			return fail("pass_hash exceeds maximum length of 255 characters")
		}
	}
	return nil
}

// DeleteUser valida el parámetro de ruta de un borrado.
func DeleteUser(userID string) *Error {
	if userID == "" {
		return fail("user_id is required")
	}
	return nil
}
