// Package validation clasifica payloads de entrada por recurso y operación.
// Son funciones puras sin estado ni I/O: el mismo payload produce siempre el
// mismo veredicto. El cruce contra estado vivo (ej. cantidad disponible en
// una devolución) NO ocurre aquí sino en el caso de uso.
package validation

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Error resultado de una validación fallida: mensaje legible y, cuando aplica,
// la lista de campos ofensores. Un *Error nil significa payload válido.
type Error struct {
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func fail(message string, fields ...string) *Error {
	return &Error{Message: message, Fields: fields}
}

// missingKeys devuelve las claves requeridas ausentes del payload.
// Con nullOk=false, un valor null explícito también cuenta como faltante
// (contrato de creación de Item y User); una compra solo exige presencia.
func missingKeys(data map[string]any, required []string, nullOk bool) []string {
	var missing []string
	for _, field := range required {
		v, ok := data[field]
		if !ok || (!nullOk && v == nil) {
			missing = append(missing, field)
		}
	}
	return missing
}

// invalidKeys devuelve, ordenadas, las claves de params fuera del allowlist.
func invalidKeys(params map[string]string, allowed []string) []string {
	var invalid []string
	for key := range params {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, key)
		}
	}
	sort.Strings(invalid)
	return invalid
}

// asNumber interpreta un valor JSON como numérico. Los cuerpos se decodifican
// con UseNumber, así que lo numérico llega como json.Number.
func asNumber(v any) (decimal.Decimal, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// asInteger interpreta un valor JSON como entero (sin parte fraccionaria).
func asInteger(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
