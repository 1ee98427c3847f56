package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VendedorUC *usecase.VendedorUseCase
	ReportUC   *usecase.ReportUseCase
	Sessions   *session.Store
	Log        *logger.Logger
}

// Router registra las rutas de la API JSON y de las páginas HTML.
func Router(app *fiber.App, deps RouterDeps) error {
	api := app.Group("/api")

	// Vendedores (JSON). reglas e informe.pdf antes de /:id.
	vendedores := api.Group("/vendedores")
	vendedorHandler := NewVendedorHandler(deps.VendedorUC, deps.ReportUC, deps.Log)
	vendedores.Get("/", vendedorHandler.List)
	vendedores.Post("/", vendedorHandler.Create)
	vendedores.Get("/reglas", vendedorHandler.Rules)
	vendedores.Get("/informe.pdf", vendedorHandler.ReportPDF)
	vendedores.Get("/:id", vendedorHandler.GetByID)
	vendedores.Put("/:id", vendedorHandler.Update)
	vendedores.Delete("/:id", vendedorHandler.Delete)

	// Páginas (HTML + flash en sesión)
	sessions := deps.Sessions
	if sessions == nil {
		sessions = session.New()
	}
	webHandler, err := NewWebHandler(deps.VendedorUC, sessions, deps.Log)
	if err != nil {
		return err
	}
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/vendedores") })
	web := app.Group("/vendedores")
	web.Get("/", webHandler.Index)
	web.Get("/crear", webHandler.New)
	web.Post("/", webHandler.Store)
	web.Get("/:id", webHandler.Show)
	web.Get("/:id/editar", webHandler.Edit)
	web.Post("/:id", webHandler.Update)
	web.Post("/:id/eliminar", webHandler.Destroy)
	return nil
}
