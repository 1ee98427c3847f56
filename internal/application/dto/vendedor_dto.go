package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

// Value escalar JSON leído como texto. Acepta cadenas, números, booleanos y null
// para que la validación reporte el campo en vez de rechazar el cuerpo entero.
type Value string

// UnmarshalJSON implementa json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
	case '{', '[':
		return fmt.Errorf("se esperaba un valor escalar")
	default:
		*v = Value(b)
	}
	return nil
}

// VendedorRequest body para POST/PUT /api/vendedores (los cinco campos editables).
type VendedorRequest struct {
	Name       Value `json:"nombre" form:"nombre"`
	NIF        Value `json:"nif" form:"nif"`
	BirthDate  Value `json:"fecha_nac" form:"fecha_nac"`
	Sex        Value `json:"sexo" form:"sexo"`
	BaseSalary Value `json:"sueldo_base" form:"sueldo_base"`
}

// Input convierte el body en el candidato del dominio.
func (r VendedorRequest) Input() vendedor.Input {
	return vendedor.Input{
		Name:       string(r.Name),
		NIF:        string(r.NIF),
		BirthDate:  string(r.BirthDate),
		Sex:        string(r.Sex),
		BaseSalary: string(r.BaseSalary),
	}
}

// RequestFromInput operación inversa de Input (usada por los clientes).
func RequestFromInput(in vendedor.Input) VendedorRequest {
	return VendedorRequest{
		Name:       Value(in.Name),
		NIF:        Value(in.NIF),
		BirthDate:  Value(in.BirthDate),
		Sex:        Value(in.Sex),
		BaseSalary: Value(in.BaseSalary),
	}
}

// VendedorResponse vendedor en respuestas. sueldo_base va con dos decimales fijos.
type VendedorResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	NIF        string    `json:"nif"`
	BirthDate  string    `json:"fecha_nac"`
	Sex        string    `json:"sexo"`
	BaseSalary string    `json:"sueldo_base"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Input devuelve los campos editables como candidato (para precargar formularios).
func (r VendedorResponse) Input() vendedor.Input {
	return vendedor.Input{
		Name:       r.Name,
		NIF:        r.NIF,
		BirthDate:  r.BirthDate,
		Sex:        r.Sex,
		BaseSalary: r.BaseSalary,
	}
}

// ToVendedorResponse mapea la entidad a la respuesta.
func ToVendedorResponse(v *entity.Vendedor) *VendedorResponse {
	if v == nil {
		return nil
	}
	return &VendedorResponse{
		ID:         v.ID,
		Name:       v.Name,
		NIF:        v.NIF,
		BirthDate:  v.BirthDate.Format(vendedor.DateLayout),
		Sex:        v.Sex,
		BaseSalary: v.BaseSalary.StringFixed(2),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// VendedorPage página de vendedores con los metadatos del paginador.
// from y to son null cuando la página no tiene registros.
type VendedorPage struct {
	CurrentPage  int                `json:"current_page"`
	Data         []VendedorResponse `json:"data"`
	FirstPageURL string             `json:"first_page_url"`
	From         *int               `json:"from"`
	LastPage     int                `json:"last_page"`
	LastPageURL  string             `json:"last_page_url"`
	NextPageURL  *string            `json:"next_page_url"`
	Path         string             `json:"path"`
	PerPage      int                `json:"per_page"`
	PrevPageURL  *string            `json:"prev_page_url"`
	To           *int               `json:"to"`
	Total        int                `json:"total"`
}

// HasMorePages indica si existe una página posterior.
func (p *VendedorPage) HasMorePages() bool {
	return p.CurrentPage < p.LastPage
}

// SetPath rellena path y las URLs de navegación a partir de la ruta base.
func (p *VendedorPage) SetPath(path string) {
	p.Path = path
	p.FirstPageURL = p.URL(1)
	p.LastPageURL = p.URL(p.LastPage)
	p.NextPageURL, p.PrevPageURL = nil, nil
	if p.HasMorePages() {
		next := p.URL(p.CurrentPage + 1)
		p.NextPageURL = &next
	}
	if p.CurrentPage > 1 {
		prev := p.URL(p.CurrentPage - 1)
		p.PrevPageURL = &prev
	}
}

// URL de la página n conservando per_page.
func (p *VendedorPage) URL(n int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(n))
	q.Set("per_page", strconv.Itoa(p.PerPage))
	return p.Path + "?" + q.Encode()
}

// RulesResponse contrato de validación para clientes externos.
type RulesResponse struct {
	Fields     []string        `json:"campos"`
	Sexes      []string        `json:"sexos"`
	DateLayout string          `json:"formato_fecha"`
	Rules      []vendedor.Rule `json:"reglas"`
}
