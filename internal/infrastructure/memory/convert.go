// Package memory implementa los puertos de repositorio sobre mapas en memoria
// protegidos por mutex. Replica la semántica de los adaptadores PostgreSQL
// (allowlist de campos actualizables, resta condicional de cantidad) para que
// los casos de uso y handlers se puedan ejercitar sin base de datos.
package memory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

func incompatible(name string) error {
	return fmt.Errorf("%w: valor incompatible para %q", domain.ErrInvalidInput, name)
}

// nullViolation simula la violación de constraint que produciría la DB al
// escribir NULL en una columna obligatoria.
func nullViolation(name string) error {
	return fmt.Errorf("null value in column %q", name)
}

// Variantes puntero: null se admite (columna nullable).

func toText(name string, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		return &s, nil
	}
	return nil, incompatible(name)
}

func toInteger(name string, v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return &i, nil
		}
	}
	return nil, incompatible(name)
}

func toNumeric(name string, v any) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	if n, ok := v.(json.Number); ok {
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return &d, nil
		}
	}
	return nil, incompatible(name)
}

// Variantes valor: para columnas obligatorias, null falla como lo haría la DB.

func textVal(name string, v any) (string, error) {
	p, err := toText(name, v)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", nullViolation(name)
	}
	return *p, nil
}

func integerVal(name string, v any) (int64, error) {
	p, err := toInteger(name, v)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nullViolation(name)
	}
	return *p, nil
}

func numericVal(name string, v any) (decimal.Decimal, error) {
	p, err := toNumeric(name, v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if p == nil {
		return decimal.Decimal{}, nullViolation(name)
	}
	return *p, nil
}

func booleanVal(name string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if v == nil {
		return false, nullViolation(name)
	}
	return false, incompatible(name)
}
