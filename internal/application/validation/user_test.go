package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/validation"
)

func validUserPayload() map[string]any {
	return map[string]any{
		"user_id":   "jperez",
		"user_name": "Juan Pérez",
		"pass_hash": "$2a$10$abcdefghijklmnopqrstuv",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_PayloadValido(t *testing.T) {
	assert.Nil(t, validation.CreateUser(validUserPayload()))

	data := validUserPayload()
	data["user_role"] = "employee"
	assert.Nil(t, validation.CreateUser(data))
}

func TestCreateUser_CamposFaltantes(t *testing.T) {
	data := validUserPayload()
	delete(data, "pass_hash")
	data["user_name"] = nil

	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Missing required fields", verr.Message)
	assert.ElementsMatch(t, []string{"user_name", "pass_hash"}, verr.Fields)
}

func TestCreateUser_TopesDeLongitud(t *testing.T) {
	data := validUserPayload()
	data["user_id"] = strings.Repeat("a", 51)
	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "user_id exceeds maximum length of 50 characters", verr.Message)

	data = validUserPayload()
	data["user_name"] = strings.Repeat("a", 101)
	verr = validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "user_name exceeds maximum length of 100 characters", verr.Message)

	data = validUserPayload()
	data["pass_hash"] = strings.Repeat("a", 256)
	verr = validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "pass_hash exceeds maximum length of 255 characters", verr.Message)
}

// Los topes cuentan caracteres, no bytes: 60 eñes son 120 bytes pero caben
// de sobra en 100 caracteres.
func TestCreateUser_TopesEnCaracteresNoBytes(t *testing.T) {
	data := validUserPayload()
	data["user_name"] = strings.Repeat("ñ", 60)
	assert.Nil(t, validation.CreateUser(data))

	data = validUserPayload()
	data["user_id"] = strings.Repeat("ñ", 50)
	assert.Nil(t, validation.CreateUser(data))

	data = validUserPayload()
	data["user_id"] = strings.Repeat("ñ", 51)
	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "user_id exceeds maximum length of 50 characters", verr.Message)

	assert.Nil(t, validation.UpdateUser(map[string]any{"pass_hash": strings.Repeat("ñ", 255)}))
}

func TestCreateUser_RolFueraDelEnum(t *testing.T) {
	data := validUserPayload()
	data["user_role"] = "manager"

	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid user_role. Allowed values: admin, employee", verr.Message)
}

func TestCreateUser_NombreSoloEspacios(t *testing.T) {
	data := validUserPayload()
	data["user_name"] = "   \t"

	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "user_name cannot be empty or whitespace", verr.Message)
}

func TestCreateUser_TipoIncorrecto(t *testing.T) {
	data := validUserPayload()
	data["user_id"] = true

	verr := validation.CreateUser(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid value for user_id", verr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReadUserParams
// ──────────────────────────────────────────────────────────────────────────────

func TestReadUserParams(t *testing.T) {
	verr := validation.ReadUserParams(map[string]string{})
	require.NotNil(t, verr)
	assert.Equal(t, "Provide at least one search parameter", verr.Message)

	verr = validation.ReadUserParams(map[string]string{"email": "x@y.z"})
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid query parameter(s): email", verr.Message)

	assert.Nil(t, validation.ReadUserParams(map[string]string{
		"user_name": "Juan", "user_role": "admin", "user_id": "jperez",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_IdentificadorInmutable(t *testing.T) {
	verr := validation.UpdateUser(map[string]any{
		"user_id":   "otro",
		"user_name": "válido",
	})
	require.NotNil(t, verr)
	assert.Equal(t, "user_id cannot be updated (immutable field)", verr.Message)
}

func TestUpdateUser_PayloadVacio(t *testing.T) {
	verr := validation.UpdateUser(map[string]any{})
	require.NotNil(t, verr)
	assert.Equal(t, "No update fields provided", verr.Message)
}

func TestUpdateUser_ValoresParciales(t *testing.T) {
	assert.Nil(t, validation.UpdateUser(map[string]any{"user_role": "admin"}))

	verr := validation.UpdateUser(map[string]any{"user_name": "  "})
	require.NotNil(t, verr)
	assert.Equal(t, "user_name cannot be empty or whitespace", verr.Message)

	verr = validation.UpdateUser(map[string]any{"pass_hash": strings.Repeat("x", 256)})
	require.NotNil(t, verr)
	assert.Equal(t, "pass_hash exceeds maximum length of 255 characters", verr.Message)
}

func TestDeleteUser_IdentificadorRequerido(t *testing.T) {
	verr := validation.DeleteUser("")
	require.NotNil(t, verr)
	assert.Equal(t, "user_id is required", verr.Message)
}
