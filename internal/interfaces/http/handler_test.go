package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// newTestApp arma la API completa sobre los repositorios en memoria.
func newTestApp() *fiber.App {
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ItemUC:        usecase.NewItemUseCase(memory.NewItemRepository()),
		UserUC:        usecase.NewUserUseCase(memory.NewUserRepository()),
		TransactionUC: usecase.NewTransactionUseCase(memory.NewTransactionRepository()),
		Log:           logger.Nop(),
		StoreTimeout:  time.Second,
	})
	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string) *nethttp.Response {
	t.Helper()
	var req *nethttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// message decodifica la envoltura {message, fields} de la respuesta.
func message(t *testing.T, resp *nethttp.Response) (string, []string) {
	t.Helper()
	defer resp.Body.Close()
	var out struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Message, out.Fields
}

// listBody decodifica una respuesta de búsqueda (arreglo de objetos).
func listBody(t *testing.T, resp *nethttp.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
