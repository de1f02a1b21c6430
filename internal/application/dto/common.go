package dto

// ErrorResponse cuerpo de error en la salida JSON del CLI.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
