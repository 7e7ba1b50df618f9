// Package api exposes the extraction pipeline and list reconciliation over
// HTTP.
package api

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/aquabill/statement-reconciler/internal/compare"
	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/parser"
	"github.com/aquabill/statement-reconciler/internal/reader"
)

// Server wires the pipeline collaborators behind the HTTP handlers.
type Server struct {
	log logging.Logger
}

// NewApp builds the fiber application with all routes registered.
func NewApp(log logging.Logger) *fiber.App {
	s := &Server{log: log}

	app := fiber.New(fiber.Config{
		BodyLimit:             50 * 1024 * 1024,
		DisableStartupMessage: true,
	})
	app.Use(recoverer.New())
	app.Use(cors.New())

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/extract", s.handleExtract)
	app.Post("/api/compare", s.handleCompare)
	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleExtract accepts one multipart document plus an optional password and
// returns the per-sheet extraction results. A locked document answers 401 with
// passwordRequired so the client can re-submit with credentials.
func (s *Server) handleExtract(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file upload"})
	}
	password := c.FormValue("password")

	var results []models.SheetResult
	if strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		results, err = s.extractPDF(c, fh, password)
	} else {
		results, err = s.extractWorkbook(fh, password)
	}
	if err != nil {
		if errors.Is(err, reader.ErrPasswordRequired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"passwordRequired": true})
		}
		s.log.Logf("api", "extract %s failed: %v", fh.Filename, err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"results": results})
}

func (s *Server) extractPDF(c *fiber.Ctx, fh *multipart.FileHeader, password string) ([]models.SheetResult, error) {
	// The PDF reader needs a seekable file, so spool the upload to disk.
	tmp := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+".pdf")
	if err := c.SaveFile(fh, tmp); err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	text, err := reader.ReadPDFText(tmp, password)
	if err != nil {
		return nil, err
	}
	return []models.SheetResult{parser.ExtractTextStatement(text, fh.Filename, s.log)}, nil
}

func (s *Server) extractWorkbook(fh *multipart.FileHeader, password string) ([]models.SheetResult, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets, err := reader.ReadWorkbook(f, password)
	if err != nil {
		return nil, err
	}
	return parser.ProcessSheets(sheets, fh.Filename, s.log), nil
}

type compareRequest struct {
	ListA string `json:"listA"`
	ListB string `json:"listB"`
}

func (s *Server) handleCompare(c *fiber.Ctx) error {
	var req compareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(compare.Compare(req.ListA, req.ListB))
}
