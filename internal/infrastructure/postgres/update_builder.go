package postgres

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// fieldKind tipo de columna admitido por el constructor de updates.
type fieldKind int

const (
	kindText fieldKind = iota
	kindNumeric
	kindInteger
	kindBoolean
)

// columnSet allowlist de columnas actualizables de una tabla. Los nombres de
// columna del SQL generado salen exclusivamente de aquí: una clave del payload
// fuera del set rechaza la operación antes de construir texto alguno. Las
// columnas de identidad no aparecen nunca en un columnSet.
type columnSet map[string]fieldKind

var itemColumns = columnSet{
	"item_name":              kindText,
	"item_uom":               kindText,
	"item_group":             kindText,
	"retail_price":           kindNumeric,
	"purchase_price":         kindNumeric,
	"warranty_period":        kindInteger,
	"is_stock_item":          kindBoolean,
	"brand":                  kindText,
	"description":            kindText,
	"single_unit_dimensions": kindText,
	"single_unit_weight":     kindNumeric,
	"weight_uom":             kindText,
	"country_of_origin":      kindText,
	"barcode":                kindText,
	"barcode_type":           kindText,
}

var userColumns = columnSet{
	"user_name": kindText,
	"user_role": kindText,
	"pass_hash": kindText,
}

var transactionColumns = columnSet{
	"date":                 kindText,
	"sales_uom":            kindText,
	"transaction_quantity": kindInteger,
	"shipping_address":     kindText,
	"shipping_city":        kindText,
	"shipping_state":       kindText,
	"shipping_zipcode":     kindText,
	"shipping_country":     kindText,
	"transaction_image":    kindText,
	"transaction_barcode":  kindText,
	"transaction_weight":   kindNumeric,
	"tracking_information": kindText,
}

// buildUpdate arma un UPDATE parcial: SET solo con los campos del payload y
// WHERE sobre las columnas de identidad. Todos los valores van como parámetros
// posicionales; jamás se interpola un valor en el texto. Los campos se emiten
// en orden alfabético (el orden no tiene efecto semántico, pero así el SQL es
// determinista y testeable).
func buildUpdate(table string, allowed columnSet, fields map[string]any, keyCols []string, keyVals []string) (string, []any, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := allowed[name]; !ok {
			return "", nil, fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, name)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", nil, fmt.Errorf("%w: payload vacío", domain.ErrInvalidInput)
	}
	sort.Strings(names)

	var sb strings.Builder
	args := make([]any, 0, len(names)+len(keyCols))
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	for i, name := range names {
		value, err := convertValue(allowed[name], name, fields[name])
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, value)
		fmt.Fprintf(&sb, "%s = $%d", name, len(args))
	}
	sb.WriteString(" WHERE ")
	for i, col := range keyCols {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		args = append(args, keyVals[i])
		fmt.Fprintf(&sb, "%s = $%d", col, len(args))
	}
	return sb.String(), args, nil
}

// convertValue pasa el valor JSON crudo al tipo Go que corresponde a la
// columna. null siempre se admite aquí; si la columna lo tolera lo decide la DB.
func convertValue(kind fieldKind, name string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case kindText:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case kindNumeric:
		if n, ok := v.(json.Number); ok {
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return d, nil
			}
		}
	case kindInteger:
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				return i, nil
			}
		}
	case kindBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: valor incompatible para %q", domain.ErrInvalidInput, name)
}
