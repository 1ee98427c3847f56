package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// Mensajes flash de las páginas.
const (
	flashDeleteFailed = "No se pudo eliminar el vendedor"

	flashKindKey = "flash_kind"
	flashMsgKey  = "flash_msg"
)

// Flash mensaje de un solo uso guardado en sesión entre redirect y GET.
type Flash struct {
	Kind    string // success, warning
	Message string
}

type listView struct {
	Title string
	Flash *Flash
	Page  *dto.VendedorPage
}

type detailView struct {
	Title    string
	Flash    *Flash
	Vendedor *dto.VendedorResponse
}

type formView struct {
	Title   string
	Flash   *Flash
	Action  string
	Submit  string
	Input   vendedor.Input
	Errors  map[string][]string
	Sexes   []string
	MaxName int
	MaxNIF  int
}

// WebHandler páginas HTML de /vendedores sobre el mismo caso de uso que la API.
type WebHandler struct {
	uc       *usecase.VendedorUseCase
	sessions *session.Store
	views    *renderer
	log      *logger.Logger
}

// NewWebHandler construye el handler y parsea las plantillas embebidas.
func NewWebHandler(uc *usecase.VendedorUseCase, sessions *session.Store, log *logger.Logger) (*WebHandler, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &WebHandler{uc: uc, sessions: sessions, views: views, log: log}, nil
}

// Index GET /vendedores
func (h *WebHandler) Index(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		in = dto.PageRequest{}
	}
	page, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return err
	}
	page.SetPath(c.Path())
	return h.views.render(c, fiber.StatusOK, pageList, listView{
		Title: "Lista de Vendedores",
		Flash: h.popFlash(c),
		Page:  page,
	})
}

// Show GET /vendedores/:id
func (h *WebHandler) Show(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return h.notFound(c)
	}
	v, err := h.uc.GetByID(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		return err
	}
	return h.views.render(c, fiber.StatusOK, pageDetail, detailView{
		Title:    "Detalle del Vendedor",
		Flash:    h.popFlash(c),
		Vendedor: v,
	})
}

// New GET /vendedores/crear
func (h *WebHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "Nuevo Vendedor", "/vendedores", "Guardar", vendedor.Input{}, nil)
}

// Store POST /vendedores
func (h *WebHandler) Store(c *fiber.Ctx) error {
	in := formRequest(c)
	_, err := h.uc.Create(c.UserContext(), in)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, "Nuevo Vendedor", "/vendedores", "Guardar", in.Input(), ve.Fields)
	}
	if err != nil {
		return err
	}
	return h.redirectWithFlash(c, "/vendedores", "success", msgCreated)
}

// Edit GET /vendedores/:id/editar
func (h *WebHandler) Edit(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return h.notFound(c)
	}
	v, err := h.uc.GetByID(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		return err
	}
	return h.renderForm(c, fiber.StatusOK, "Editar Vendedor", updateAction(id), "Actualizar", v.Input(), nil)
}

// Update POST /vendedores/:id
func (h *WebHandler) Update(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return h.notFound(c)
	}
	in := formRequest(c)
	_, err := h.uc.Update(c.UserContext(), id, in)
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return h.renderForm(c, fiber.StatusUnprocessableEntity, "Editar Vendedor", updateAction(id), "Actualizar", in.Input(), ve.Fields)
	case errors.Is(err, domain.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return err
	}
	return h.redirectWithFlash(c, "/vendedores", "success", msgUpdated)
}

// Destroy POST /vendedores/:id/eliminar
func (h *WebHandler) Destroy(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return h.redirectWithFlash(c, "/vendedores", "warning", flashDeleteFailed)
	}
	err := h.uc.Delete(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return h.redirectWithFlash(c, "/vendedores", "warning", flashDeleteFailed)
	}
	if err != nil {
		return err
	}
	return h.redirectWithFlash(c, "/vendedores", "success", msgDeleted)
}

func (h *WebHandler) renderForm(c *fiber.Ctx, status int, title, action, submit string, in vendedor.Input, errs map[string][]string) error {
	return h.views.render(c, status, pageForm, formView{
		Title:   title,
		Action:  action,
		Submit:  submit,
		Input:   in,
		Errors:  errs,
		Sexes:   vendedor.Sexes,
		MaxName: vendedor.MaxNameLength,
		MaxNIF:  vendedor.MaxNIFLength,
	})
}

func (h *WebHandler) notFound(c *fiber.Ctx) error {
	return h.views.render(c, fiber.StatusNotFound, pageNotFound, detailView{Title: "Detalle del Vendedor"})
}

func (h *WebHandler) redirectWithFlash(c *fiber.Ctx, to, kind, msg string) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("sesión: %w", err)
	}
	sess.Set(flashKindKey, kind)
	sess.Set(flashMsgKey, msg)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

// popFlash lee y borra el flash; un fallo de sesión solo se registra.
func (h *WebHandler) popFlash(c *fiber.Ctx) *Flash {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.log.Warn().Err(err).Msg("leer sesión")
		return nil
	}
	msg, _ := sess.Get(flashMsgKey).(string)
	if msg == "" {
		return nil
	}
	kind, _ := sess.Get(flashKindKey).(string)
	sess.Delete(flashMsgKey)
	sess.Delete(flashKindKey)
	if err := sess.Save(); err != nil {
		h.log.Warn().Err(err).Msg("guardar sesión")
	}
	return &Flash{Kind: kind, Message: msg}
}

func formRequest(c *fiber.Ctx) dto.VendedorRequest {
	return dto.VendedorRequest{
		Name:       dto.Value(c.FormValue(vendedor.FieldName)),
		NIF:        dto.Value(c.FormValue(vendedor.FieldNIF)),
		BirthDate:  dto.Value(c.FormValue(vendedor.FieldBirthDate)),
		Sex:        dto.Value(c.FormValue(vendedor.FieldSex)),
		BaseSalary: dto.Value(c.FormValue(vendedor.FieldBaseSalary)),
	}
}

func updateAction(id int64) string {
	return fmt.Sprintf("/vendedores/%d", id)
}
