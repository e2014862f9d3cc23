package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta estándar de creación con el id asignado.
type IDResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}
