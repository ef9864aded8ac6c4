package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
)

// RouterDeps holds the router's dependencies.
type RouterDeps struct {
	ExportUC *gstreport.ExportUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	gstGroup := api.Group("/gst")
	handler := NewGSTHandler(deps.ExportUC)
	gstGroup.Get("/export", handler.Export)
	gstGroup.Get("/export/preview", handler.Preview)
}
