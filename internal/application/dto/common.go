package dto

// MessageResponse respuesta genérica de la API: mensaje y, para fallas de
// validación, la lista opcional de campos ofensores.
type MessageResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}
