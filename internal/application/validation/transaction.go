package validation

import (
	"sort"
	"unicode/utf8"
)

// purchaseRequiredFields campos obligatorios de una compra. A diferencia de la
// creación de artículos y usuarios, aquí solo se exige la presencia de la
// clave: un valor null explícito pasa.
var purchaseRequiredFields = []string{
	"item_sku", "warehouse_id", "customer_id", "date", "sales_uom",
	"transaction_quantity", "shipping_address", "shipping_city",
	"shipping_state", "shipping_zipcode", "shipping_country",
}

// purchaseUpdatableFields campos admitidos al actualizar una compra.
var purchaseUpdatableFields = []string{
	"date", "sales_uom", "transaction_quantity", "shipping_address",
	"shipping_city", "shipping_state", "shipping_zipcode", "shipping_country",
	"transaction_image", "transaction_barcode", "transaction_weight", "tracking_information",
}

// transactionImmutableFields la clave compuesta no se puede modificar.
var transactionImmutableFields = []string{"item_sku", "warehouse_id", "customer_id"}

// checkPurchaseValues restricciones compartidas entre compra y actualización:
// cantidad entera positiva, peso no negativo y tracking acotado, todas solo
// si el campo viene con valor.
func checkPurchaseValues(data map[string]any) *Error {
	if v, present := data["transaction_quantity"]; present && v != nil {
		qty, ok := asInteger(v)
		if !ok || qty <= 0 {
			return fail("Transaction quantity must be greater than 0")
		}
	}
	if v, present := data["transaction_weight"]; present && v != nil {
		w, ok := asNumber(v)
		if !ok || w.IsNegative() {
			return fail("Transaction weight cannot be negative")
		}
	}
	if v, present := data["tracking_information"]; present && v != nil {
		s, ok := asString(v)
		if !ok || utf8.RuneCountInString(s) > 255 {
			return fail("Tracking information exceeds the maximum allowed length")
		}
	}
	return nil
}

// Purchase valida el registro de una compra.
func Purchase(data map[string]any) *Error {
	if missing := missingKeys(data, purchaseRequiredFields, true); len(missing) > 0 {
		return fail("Missing required fields", missing...)
	}
	return checkPurchaseValues(data)
}

// UpdatePurchase valida una actualización parcial de compra: todas las claves
// dentro del allowlist (la petición completa se rechaza nombrando las
// ofensoras) y la clave compuesta intacta.
func UpdatePurchase(data map[string]any) *Error {
	if len(data) == 0 {
		return fail("No update fields provided")
	}
	var invalid []string
	for key := range data {
		found := false
		for _, f := range purchaseUpdatableFields {
			if key == f {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fail("Invalid fields provided", invalid...)
	}
	for _, field := range transactionImmutableFields {
		if _, present := data[field]; present {
			return fail("Fields item_sku, warehouse_id, and customer_id cannot be updated")
		}
	}
	return checkPurchaseValues(data)
}

// Return valida una devolución: return_quantity presente y entero positivo.
// El cruce contra la cantidad vigente de la transacción no ocurre aquí: lo
// resuelve el caso de uso contra el estado vivo del almacén.
func Return(data map[string]any) *Error {
	v, present := data["return_quantity"]
	if !present {
		return fail("Missing required field: return_quantity")
	}
	qty, ok := asInteger(v)
	if !ok || qty <= 0 {
		return fail("Return quantity must be greater than 0")
	}
	return nil
}
