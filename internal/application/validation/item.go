package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// itemRequiredFields los 16 campos obligatorios al crear un artículo.
var itemRequiredFields = []string{
	"item_sku", "item_name", "item_uom", "item_group", "retail_price",
	"purchase_price", "warranty_period", "is_stock_item", "brand",
	"description", "single_unit_dimensions", "single_unit_weight",
	"weight_uom", "country_of_origin", "barcode", "barcode_type",
}

// itemReadParams parámetros de búsqueda reconocidos para artículos.
var itemReadParams = []string{"item_name", "item_group", "brand", "item_sku"}

// CreateItem valida el payload de creación de un artículo: los 16 campos
// presentes y no nulos, precios numéricos coherentes y garantía entera no
// negativa. La ausencia se reporta con la lista completa de campos faltantes.
func CreateItem(data map[string]any) *Error {
	if missing := missingKeys(data, itemRequiredFields, false); len(missing) > 0 {
		return fail("Missing required fields", missing...)
	}

	retail, ok := asNumber(data["retail_price"])
	if !ok || retail.LessThanOrEqual(decimal.Zero) {
		return fail("Invalid retail price")
	}
	purchase, ok := asNumber(data["purchase_price"])
	if !ok || purchase.IsNegative() {
		return fail("Invalid purchase price")
	}
	if purchase.GreaterThan(retail) {
		return fail("Purchase price cannot exceed retail price")
	}
	warranty, ok := asInteger(data["warranty_period"])
	if !ok || warranty < 0 {
		return fail("Invalid warranty period")
	}
	return nil
}

// ReadItemParams valida los parámetros de búsqueda de artículos: al menos uno,
// y todos dentro del allowlist.
func ReadItemParams(params map[string]string) *Error {
	if len(params) == 0 {
		return fail("Provide at least one search parameter")
	}
	if invalid := invalidKeys(params, itemReadParams); len(invalid) > 0 {
		return fail(fmt.Sprintf("Invalid query parameter(s): %s", joinFields(invalid)), invalid...)
	}
	return nil
}

// UpdateItem valida una actualización parcial de artículo. Los campos
// numéricos presentes deben ser números no negativos. El cruce
// purchase_price <= retail_price NO se repite aquí: la actualización solo
// valida cada campo por separado.
func UpdateItem(data map[string]any) *Error {
	if len(data) == 0 {
		return fail("No update fields provided")
	}
	for _, field := range []string{"retail_price", "purchase_price", "warranty_period"} {
		v, ok := data[field]
		if !ok {
			continue
		}
		n, isNum := asNumber(v)
		if !isNum || n.IsNegative() {
			return fail(fmt.Sprintf("Invalid value for %s", field))
		}
	}
	return nil
}

// DeleteItem valida el parámetro de ruta de un borrado.
func DeleteItem(itemSKU string) *Error {
	if itemSKU == "" {
		return fail("Item SKU is required")
	}
	return nil
}
