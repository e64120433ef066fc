package dto

// DateLayout formato de fechas de negocio (granularidad de día).
const DateLayout = "2006-01-02"

// ListQuery parámetros comunes de paginación.
type ListQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize acota los parámetros de paginación a valores razonables.
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// ErrorResponse es el cuerpo estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
