package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// VendedorHandler maneja las peticiones JSON de /api/vendedores.
type VendedorHandler struct {
	uc     *usecase.VendedorUseCase
	report *usecase.ReportUseCase
	log    *logger.Logger
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *usecase.VendedorUseCase, report *usecase.ReportUseCase, log *logger.Logger) *VendedorHandler {
	return &VendedorHandler{uc: uc, report: report, log: log}
}

// List godoc
// @Summary      Listar vendedores
// @Description  Página de vendedores ordenados por nombre. per_page se acota al máximo configurado.
// @Tags         vendedores
// @Produce      json
// @Param        page      query  int  false  "Página"            default(1)
// @Param        per_page  query  int  false  "Registros/página"  default(10)
// @Success      200  {object}  dto.Response{data=dto.VendedorPage}
// @Router       /api/vendedores [get]
func (h *VendedorHandler) List(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		in = dto.PageRequest{}
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return h.internal(c, err)
	}
	out.SetPath(c.BaseURL() + c.Path())
	return c.JSON(dto.Success(out, ""))
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         vendedores
// @Produce      json
// @Param        id   path  int  true  "ID del vendedor"
// @Success      200  {object}  dto.Response{data=dto.VendedorResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/vendedores/{id} [get]
func (h *VendedorHandler) GetByID(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return notFound(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.Success(out, ""))
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendedorRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.Response{data=dto.VendedorResponse}
// @Failure      400   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /api/vendedores [post]
func (h *VendedorHandler) Create(c *fiber.Ctx) error {
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(msgInvalidBody, nil))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, msgCreated))
}

// Update godoc
// @Summary      Actualizar vendedor
// @Description  Reemplaza los cinco campos editables.
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del vendedor"
// @Param        body  body  dto.VendedorRequest  true  "Datos del vendedor"
// @Success      200   {object}  dto.Response{data=dto.VendedorResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Router       /api/vendedores/{id} [put]
func (h *VendedorHandler) Update(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(msgInvalidBody, nil))
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.Success(out, msgUpdated))
}

// Delete godoc
// @Summary      Eliminar vendedor
// @Tags         vendedores
// @Produce      json
// @Param        id   path  int  true  "ID del vendedor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/vendedores/{id} [delete]
func (h *VendedorHandler) Delete(c *fiber.Ctx) error {
	id, ok := vendedorID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.Success(nil, msgDeleted))
}

// Rules godoc
// @Summary      Reglas de validación
// @Description  Conjunto de reglas que aplica el servidor, para la prevalidación en clientes.
// @Tags         vendedores
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.RulesResponse}
// @Router       /api/vendedores/reglas [get]
func (h *VendedorHandler) Rules(c *fiber.Ctx) error {
	return c.JSON(dto.Success(h.uc.Rules(), ""))
}

// ReportPDF godoc
// @Summary      Informe PDF de vendedores
// @Tags         vendedores
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.Response
// @Router       /api/vendedores/informe.pdf [get]
func (h *VendedorHandler) ReportPDF(c *fiber.Ctx) error {
	out, filename, err := h.report.VendedoresPDF(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(out)
}

// fail traduce los errores del caso de uso a status + sobre.
func (h *VendedorHandler) fail(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Failure(msgValidation, ve.Fields))
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c)
	default:
		return h.internal(c, err)
	}
}

func (h *VendedorHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("vendedores")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(msgInternal, nil))
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Failure(msgNotFound, nil))
}

// vendedorID lee :id; ids no numéricos o no positivos no pueden existir.
func vendedorID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
