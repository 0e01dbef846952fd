package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Conversión de payloads validados (map) a tipos de entidad. Los validadores
// garantizan forma y rangos; aquí solo se exige el tipo concreto de cada
// campo, y cualquier sorpresa se reporta como ErrInvalidInput.

func reqString(data map[string]any, key string) (string, error) {
	s, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return s, nil
}

func reqBool(data map[string]any, key string) (bool, error) {
	b, ok := data[key].(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return b, nil
}

func reqDecimal(data map[string]any, key string) (decimal.Decimal, error) {
	n, ok := data[key].(json.Number)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return d, nil
}

func reqInt(data map[string]any, key string) (int64, error) {
	n, ok := data[key].(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return i, nil
}

// optString devuelve nil si el campo falta o es null.
func optString(data map[string]any, key string) (*string, error) {
	v, present := data[key]
	if !present || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return &s, nil
}

func optInt(data map[string]any, key string) (*int64, error) {
	v, present := data[key]
	if !present || v == nil {
		return nil, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return &i, nil
}

func optDecimal(data map[string]any, key string) (*decimal.Decimal, error) {
	v, present := data[key]
	if !present || v == nil {
		return nil, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return &d, nil
}

// keyString devuelve "" si el campo de clave llegó en null (la compra solo
// exige presencia, no valor).
func keyString(data map[string]any, key string) (string, error) {
	s, err := optString(data, key)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}
