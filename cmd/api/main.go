package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invoiceflow/gst-export/internal/application/gstreport"
	"github.com/invoiceflow/gst-export/internal/domain/entity"
	"github.com/invoiceflow/gst-export/internal/infrastructure/export"
	"github.com/invoiceflow/gst-export/internal/infrastructure/memstore"
	httpRouter "github.com/invoiceflow/gst-export/internal/interfaces/http"
	"github.com/invoiceflow/gst-export/pkg/config"
	"github.com/invoiceflow/gst-export/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Record store: in-memory snapshot standing in for the remote store.
	invoiceStore := memstore.NewInvoiceStore(memstore.SeedInvoices())
	profileStore := memstore.NewTaxProfileStore(memstore.SeedTaxProfiles())

	preparer := gstreport.NewPreparer(gstreport.Config{
		HomeState: cfg.GST.HomeState,
		DefaultProfile: entity.TaxProfile{
			GSTIN:         cfg.GST.DefaultGSTIN,
			HSNCode:       cfg.GST.DefaultHSNCode,
			PlaceOfSupply: cfg.GST.DefaultPlaceOfSupply,
		},
	})

	encoders := map[gstreport.Format]gstreport.Encoder{
		gstreport.FormatExcel: export.NewExcelEncoder(),
		gstreport.FormatCSV:   export.NewCSVEncoder(),
		gstreport.FormatJSON:  export.NewJSONEncoder(),
		gstreport.FormatPDF:   export.NewPDFEncoder(),
	}

	exportUC := gstreport.NewExportUseCase(invoiceStore, profileStore, preparer, encoders, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ExportUC: exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
