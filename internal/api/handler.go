// Package api exposes the statement parser over HTTP.
package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/prettyirrelevant/wakaru/internal/jobs"
	"github.com/prettyirrelevant/wakaru/internal/models"
	"github.com/prettyirrelevant/wakaru/internal/parser"
	"github.com/prettyirrelevant/wakaru/internal/writer"
)

const version = "1.0.0"

const maxUploadBytes = 32 << 20

// ParseResponse is the JSON envelope for a completed parse.
type ParseResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Bank         string               `json:"bank,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	TotalDebit   int64                `json:"totalDebit"`
	TotalCredit  int64                `json:"totalCredit"`
	Period       string               `json:"period,omitempty"`
	CSV          string               `json:"csv,omitempty"`
	Version      string               `json:"version,omitempty"`
}

// Handler wires the parser and the job store into fiber routes.
type Handler struct {
	parser *parser.Parser
	store  *jobs.Store
	logger *log.Logger
}

func NewHandler(p *parser.Parser, store *jobs.Store, logger *log.Logger) *Handler {
	return &Handler{parser: p, store: store, logger: logger}
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Get("/api/banks", h.handleBanks)
	app.Post("/api/parse", h.handleParse)
	app.Post("/api/jobs", h.handleCreateJob)
	app.Get("/api/jobs", h.handleListJobs)
	app.Get("/api/jobs/:id", h.handleGetJob)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

func (h *Handler) handleBanks(c *fiber.Ctx) error {
	banks := parser.SupportedBanks()
	names := make([]string, len(banks))
	for i, b := range banks {
		names[i] = string(b)
	}
	return c.JSON(fiber.Map{"banks": names})
}

// handleParse runs a synchronous parse of the uploaded statement. The
// optional "bank" field skips auto-detection, "password" unlocks encrypted
// PDFs, and "csv=true" adds a CSV rendering to the response.
func (h *Handler) handleParse(c *fiber.Ctx) error {
	data, filename, err := readUpload(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	bank := c.FormValue("bank")
	password := c.FormValue("password")

	transactions, err := h.parser.ParseFile(data, filename, models.BankCode(bank), password, nil)
	if err != nil {
		return writeError(c, parseStatus(err), err.Error())
	}

	resp := buildResponse(bank, transactions)
	if c.FormValue("csv") == "true" {
		var buf bytes.Buffer
		w := &writer.CSVWriter{IncludeHeader: true}
		if err := w.Write(&buf, models.BankCode(bank), transactions); err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("csv generation failed: %v", err))
		}
		resp.CSV = buf.String()
	}
	return c.JSON(resp)
}

// handleCreateJob accepts the upload, registers a job, and parses in the
// background. The response carries the job ID for polling.
func (h *Handler) handleCreateJob(c *fiber.Ctx) error {
	data, filename, err := readUpload(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	bank := c.FormValue("bank")
	password := c.FormValue("password")
	job := h.store.Create(filename, bank)

	go h.runJob(job.ID, data, filename, bank, password)

	return c.Status(fiber.StatusAccepted).JSON(job)
}

func (h *Handler) runJob(id string, data []byte, filename, bank, password string) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("parse job crashed", "job", id, "panic", rec)
			h.store.Fail(id, fmt.Errorf("internal error: %v", rec))
		}
	}()

	h.store.Start(id)
	transactions, err := h.parser.ParseFile(data, filename, models.BankCode(bank), password,
		func(percent int, message string) {
			h.store.Progress(id, percent, message)
		})
	if err != nil {
		h.logger.Warn("parse job failed", "job", id, "file", filename, "err", err)
		h.store.Fail(id, err)
		return
	}
	h.store.Complete(id, transactions)
}

func (h *Handler) handleGetJob(c *fiber.Ctx) error {
	job, err := h.store.Get(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(job)
}

func (h *Handler) handleListJobs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"jobs": h.store.List()})
}

func readUpload(c *fiber.Ctx) ([]byte, string, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("no file uploaded; use form field 'file'")
	}
	if header.Size > maxUploadBytes {
		return nil, "", fmt.Errorf("file exceeds the %dMB upload limit", maxUploadBytes>>20)
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("opening upload: %w", err)
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("reading upload: %w", err)
	}
	return data, header.Filename, nil
}

func buildResponse(bank string, transactions []models.Transaction) ParseResponse {
	var totalDebit, totalCredit int64
	for _, txn := range transactions {
		if txn.Amount < 0 {
			totalDebit += -txn.Amount
		} else {
			totalCredit += txn.Amount
		}
	}
	if bank == "" && len(transactions) > 0 {
		bank = string(transactions[0].BankSource)
	}
	return ParseResponse{
		Success:      true,
		Bank:         bank,
		Transactions: transactions,
		Count:        len(transactions),
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Period:       statementPeriod(transactions),
		Version:      version,
	}
}

func statementPeriod(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return ""
	}
	first, last := transactions[0].Date, transactions[0].Date
	for _, txn := range transactions[1:] {
		if txn.Date.Before(first) {
			first = txn.Date
		}
		if txn.Date.After(last) {
			last = txn.Date
		}
	}
	const layout = "2006-01-02"
	return first.Format(layout) + " to " + last.Format(layout)
}

// parseStatus maps parse failures to HTTP statuses: bad requests for
// unknown banks or formats, 422 for files we understood but could not
// parse.
func parseStatus(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unknown bank") || strings.Contains(msg, "unsupported"):
		return fiber.StatusBadRequest
	case strings.Contains(msg, "password"):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusUnprocessableEntity
	}
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success: false,
		Error:   msg,
	})
}
