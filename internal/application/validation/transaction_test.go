package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/validation"
)

func validPurchasePayload() map[string]any {
	return map[string]any{
		"item_sku":             "SKU-1",
		"warehouse_id":         "BOG-01",
		"customer_id":          "CL-9",
		"date":                 "2026-08-30",
		"sales_uom":            "unidad",
		"transaction_quantity": json.Number("10"),
		"shipping_address":     "Calle 100 #15-20",
		"shipping_city":        "Bogotá",
		"shipping_state":       "Cundinamarca",
		"shipping_zipcode":     "110111",
		"shipping_country":     "CO",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Purchase
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchase_PayloadValido(t *testing.T) {
	assert.Nil(t, validation.Purchase(validPurchasePayload()))
}

// En las compras solo se exige la presencia de la clave: null explícito pasa.
func TestPurchase_NullExplicitoPasa(t *testing.T) {
	data := validPurchasePayload()
	data["sales_uom"] = nil
	data["transaction_quantity"] = nil

	assert.Nil(t, validation.Purchase(data))
}

func TestPurchase_ClaveAusenteFalla(t *testing.T) {
	data := validPurchasePayload()
	delete(data, "shipping_city")
	delete(data, "date")

	verr := validation.Purchase(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Missing required fields", verr.Message)
	assert.ElementsMatch(t, []string{"date", "shipping_city"}, verr.Fields)
}

func TestPurchase_CantidadEnteraPositiva(t *testing.T) {
	for _, bad := range []any{json.Number("0"), json.Number("-3"), json.Number("2.5"), "10"} {
		data := validPurchasePayload()
		data["transaction_quantity"] = bad

		verr := validation.Purchase(data)
		require.NotNil(t, verr, "transaction_quantity=%v debe rechazarse", bad)
		assert.Equal(t, "Transaction quantity must be greater than 0", verr.Message)
	}
}

func TestPurchase_PesoNoNegativo(t *testing.T) {
	data := validPurchasePayload()
	data["transaction_weight"] = json.Number("-0.5")

	verr := validation.Purchase(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Transaction weight cannot be negative", verr.Message)
}

func TestPurchase_TrackingAcotado(t *testing.T) {
	data := validPurchasePayload()
	data["tracking_information"] = strings.Repeat("x", 256)

	verr := validation.Purchase(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Tracking information exceeds the maximum allowed length", verr.Message)

	// El tope cuenta caracteres: 255 eñes (510 bytes) pasan, 256 no.
	data = validPurchasePayload()
	data["tracking_information"] = strings.Repeat("ñ", 255)
	assert.Nil(t, validation.Purchase(data))

	data["tracking_information"] = strings.Repeat("ñ", 256)
	verr = validation.Purchase(data)
	require.NotNil(t, verr)
	assert.Equal(t, "Tracking information exceeds the maximum allowed length", verr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePurchase
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePurchase_AllowlistNombraOfensoras(t *testing.T) {
	verr := validation.UpdatePurchase(map[string]any{
		"sales_uom": "caja",
		"zzz":       1,
		"aaa":       2,
	})
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid fields provided", verr.Message)
	assert.Equal(t, []string{"aaa", "zzz"}, verr.Fields)
}

// La clave compuesta no está en el allowlist, así que tocarla cae por la misma
// vía que cualquier campo desconocido.
func TestUpdatePurchase_ClaveCompuestaRechazada(t *testing.T) {
	verr := validation.UpdatePurchase(map[string]any{"item_sku": "OTRO"})
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid fields provided", verr.Message)
	assert.Equal(t, []string{"item_sku"}, verr.Fields)
}

func TestUpdatePurchase_PayloadVacio(t *testing.T) {
	verr := validation.UpdatePurchase(map[string]any{})
	require.NotNil(t, verr)
	assert.Equal(t, "No update fields provided", verr.Message)
}

func TestUpdatePurchase_ValoresValidos(t *testing.T) {
	assert.Nil(t, validation.UpdatePurchase(map[string]any{
		"transaction_quantity": json.Number("7"),
		"transaction_weight":   json.Number("1.25"),
		"tracking_information": "GUIA-001",
		"shipping_city":        nil,
	}))

	verr := validation.UpdatePurchase(map[string]any{"transaction_quantity": json.Number("0")})
	require.NotNil(t, verr)
	assert.Equal(t, "Transaction quantity must be greater than 0", verr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Return
// ──────────────────────────────────────────────────────────────────────────────

func TestReturn_CantidadRequerida(t *testing.T) {
	verr := validation.Return(map[string]any{})
	require.NotNil(t, verr)
	assert.Equal(t, "Missing required field: return_quantity", verr.Message)
}

func TestReturn_CantidadEnteraPositiva(t *testing.T) {
	for _, bad := range []any{json.Number("0"), json.Number("-1"), json.Number("1.5"), nil, "2"} {
		verr := validation.Return(map[string]any{"return_quantity": bad})
		require.NotNil(t, verr, "return_quantity=%v debe rechazarse", bad)
		assert.Equal(t, "Return quantity must be greater than 0", verr.Message)
	}
}

func TestReturn_Valida(t *testing.T) {
	assert.Nil(t, validation.Return(map[string]any{"return_quantity": json.Number("3")}))
}
