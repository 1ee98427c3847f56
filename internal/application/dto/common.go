package dto

// Estados del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response sobre común de la API JSON: {status, message?, data?, errors?}.
type Response struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Success construye un sobre de éxito. message puede ir vacío.
func Success(data interface{}, message string) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

// Failure construye un sobre de error con mensajes por campo opcionales.
func Failure(message string, errors map[string][]string) Response {
	return Response{Status: StatusError, Message: message, Errors: errors}
}

// PageRequest paginación para listados (?page=N&per_page=M).
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// DefaultPage aplica valores por defecto y acota PerPage a max.
func (p *PageRequest) DefaultPage(defPerPage, maxPerPage int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = defPerPage
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
}

// Offset desplazamiento correspondiente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// LastPage número de la última página para total registros (mínimo 1).
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
