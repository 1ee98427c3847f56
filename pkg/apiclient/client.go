// Package apiclient es el cliente HTTP tipado de la API de vendedores.
// Lo usan el cliente de estado (internal/client), la CLI y el seed remoto.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
)

const maxBodyBytes = 4 << 20

// ErrNotFound la API respondió 404 (el vendedor no existe o ya fue eliminado).
var ErrNotFound = errors.New("apiclient: vendedor no encontrado")

// APIError respuesta de error de la API distinta de 404.
// Para 422 Errors contiene los mensajes por campo.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: HTTP %d", e.Status)
	}
	return fmt.Sprintf("apiclient: HTTP %d: %s", e.Status, e.Message)
}

// IsValidation indica si el error es un 422 con mensajes por campo.
func (e *APIError) IsValidation() bool {
	return e.Status == http.StatusUnprocessableEntity
}

// NetworkError fallo de transporte (conexión, timeout, respuesta ilegible). Se puede reintentar.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return "apiclient: " + e.Op + ": " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// Client cliente de /vendedores sobre la URL base de la API (p. ej. http://localhost:8080/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout fija el timeout de cada petición.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New construye el cliente. baseURL se toma de VENDEDORES_API_URL en los binarios.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string { return c.baseURL }

// List GET /vendedores?page=&per_page=. Valores <= 0 usan los defaults del servidor.
func (c *Client) List(ctx context.Context, page, perPage int) (*dto.VendedorPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	path := "/vendedores"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out dto.VendedorPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get GET /vendedores/{id}.
func (c *Client) Get(ctx context.Context, id int64) (*dto.VendedorResponse, error) {
	var out dto.VendedorResponse
	if err := c.do(ctx, http.MethodGet, vendedorPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /vendedores.
func (c *Client) Create(ctx context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	var out dto.VendedorResponse
	if err := c.do(ctx, http.MethodPost, "/vendedores", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /vendedores/{id}.
func (c *Client) Update(ctx context.Context, id int64, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	var out dto.VendedorResponse
	if err := c.do(ctx, http.MethodPut, vendedorPath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /vendedores/{id}.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, vendedorPath(id), nil, nil)
}

// Rules GET /vendedores/reglas.
func (c *Client) Rules(ctx context.Context) (*dto.RulesResponse, error) {
	var out dto.RulesResponse
	if err := c.do(ctx, http.MethodGet, "/vendedores/reglas", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportPDF descarga GET /vendedores/informe.pdf.
func (c *Client) ReportPDF(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/vendedores/informe.pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "GET informe.pdf", Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, &NetworkError{Op: "leer informe.pdf", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// envelope sobre de respuesta con data sin decodificar.
type envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("apiclient: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	op := method + " " + path
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("respuesta no es JSON: %w", err)}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("deserializar data: %w", err)}
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}
	apiErr := &APIError{Status: status}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Message = env.Message
		apiErr.Errors = env.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func vendedorPath(id int64) string {
	return "/vendedores/" + strconv.FormatInt(id, 10)
}
