package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func itemPayload(sku string) map[string]any {
	return map[string]any{
		"item_sku":               sku,
		"item_name":              "Taladro percutor",
		"item_uom":               "unidad",
		"item_group":             "herramientas",
		"retail_price":           json.Number("100"),
		"purchase_price":         json.Number("60"),
		"warranty_period":        json.Number("12"),
		"is_stock_item":          true,
		"brand":                  "ACME",
		"description":            "Taladro 650W",
		"single_unit_dimensions": "30x25x8",
		"single_unit_weight":     json.Number("2.5"),
		"weight_uom":             "kg",
		"country_of_origin":      "CO",
		"barcode":                "7701234567890",
		"barcode_type":           "EAN-13",
	}
}

func TestItemUseCase_CicloDeVida(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(memory.NewItemRepository())

	require.NoError(t, uc.Create(ctx, itemPayload("SKU-1")))

	// El alta repetida del mismo SKU es un conflicto, no una sobreescritura.
	err := uc.Create(ctx, itemPayload("SKU-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	items, err := uc.Search(ctx, entity.ItemFilter{SKU: "SKU-1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SKU-1", items[0].ItemSKU)
	assert.Equal(t, "Taladro percutor", items[0].ItemName)
	assert.True(t, items[0].RetailPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(12), items[0].WarrantyPeriod)
	assert.True(t, items[0].IsStockItem)

	require.NoError(t, uc.Update(ctx, "SKU-1", map[string]any{
		"retail_price": json.Number("50"),
		"brand":        "BOSCH",
	}))
	items, err = uc.Search(ctx, entity.ItemFilter{SKU: "SKU-1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].RetailPrice.Equal(decimal.NewFromInt(50)))
	// El resto del artículo queda intacto.
	assert.Equal(t, "BOSCH", items[0].Brand)
	assert.True(t, items[0].PurchasePrice.Equal(decimal.NewFromInt(60)))

	require.NoError(t, uc.Delete(ctx, "SKU-1"))
	items, err = uc.Search(ctx, entity.ItemFilter{SKU: "SKU-1"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemUseCase_OperacionesSobreSKUInexistente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(memory.NewItemRepository())

	err := uc.Update(ctx, "NADA", map[string]any{"brand": "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, "NADA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_UpdateRechazaCampoDesconocido(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(memory.NewItemRepository())
	require.NoError(t, uc.Create(ctx, itemPayload("SKU-1")))

	err := uc.Update(ctx, "SKU-1", map[string]any{"item_sku": "OTRO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Update(ctx, "SKU-1", map[string]any{"color": "rojo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUseCase_BusquedaPorSubcadena(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewItemUseCase(memory.NewItemRepository())

	a := itemPayload("SKU-A")
	a["item_name"] = "Taladro inalámbrico"
	b := itemPayload("SKU-B")
	b["item_name"] = "Martillo demoledor"
	require.NoError(t, uc.Create(ctx, a))
	require.NoError(t, uc.Create(ctx, b))

	items, err := uc.Search(ctx, entity.ItemFilter{Name: "Taladro"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SKU-A", items[0].ItemSKU)

	// Varios filtros se combinan en conjunción.
	items, err = uc.Search(ctx, entity.ItemFilter{Name: "Taladro", Brand: "NOEXISTE"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
