package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/prettyirrelevant/wakaru/internal/jobs"
	"github.com/prettyirrelevant/wakaru/internal/parser"
)

const accessCSV = `Access Bank Plc statement of account
Trans Date,Value Date,Reference,Narration,Debit,Credit,Balance
15-Jan-2024,15-Jan-2024,REF001,NIP/GTB/ADA OBI/rent,,"50,000.00","150,000.00"
16-Jan-2024,16-Jan-2024,REF002,ATM WITHDRAWAL IKEJA,"20,000.00",,"130,000.00"
`

func setupTestApp() (*fiber.App, *jobs.Store) {
	logger := log.New(io.Discard)
	store := jobs.NewStore()
	app := fiber.New()
	NewHandler(parser.New(logger), store, logger).Register(app)
	return app, store
}

func uploadRequest(t *testing.T, target, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()

	req := httptest.NewRequest("POST", target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestBanksEndpoint(t *testing.T) {
	app, _ := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/banks", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	var result struct {
		Banks []string `json:"banks"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Banks) != 11 {
		t.Errorf("expected 11 banks, got %d", len(result.Banks))
	}
}

func TestParseEndpointRequiresFile(t *testing.T) {
	app, _ := setupTestApp()

	req := httptest.NewRequest("POST", "/api/parse", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", resp.StatusCode)
	}
}

func TestParseEndpointCSVStatement(t *testing.T) {
	app, _ := setupTestApp()

	req := uploadRequest(t, "/api/parse", "statement.csv", accessCSV, map[string]string{"bank": "access"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result ParseResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 transactions, got %d", result.Count)
	}
	if result.TotalCredit != 5000000 {
		t.Errorf("total credit: got %d", result.TotalCredit)
	}
	if result.TotalDebit != 2000000 {
		t.Errorf("total debit: got %d", result.TotalDebit)
	}
}

func TestParseEndpointAutoDetectsBank(t *testing.T) {
	app, _ := setupTestApp()

	req := uploadRequest(t, "/api/parse", "statement.csv", accessCSV, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result ParseResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Bank != "access" {
		t.Errorf("expected detected bank access, got %q", result.Bank)
	}
}

func TestParseEndpointUnknownBank(t *testing.T) {
	app, _ := setupTestApp()

	req := uploadRequest(t, "/api/parse", "statement.csv", accessCSV, map[string]string{"bank": "polaris"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for unsupported bank, got %d", resp.StatusCode)
	}
}

func TestJobEndpoints(t *testing.T) {
	app, _ := setupTestApp()

	req := uploadRequest(t, "/api/jobs", "statement.csv", accessCSV, map[string]string{"bank": "access"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	var created jobs.Job
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a job id")
	}

	// The parse runs in the background; poll until it lands.
	var polled jobs.Job
	for i := 0; i < 50; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/"+created.ID, nil))
		if err != nil {
			t.Fatalf("poll failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &polled); err != nil {
			t.Fatalf("failed to decode poll response: %v", err)
		}
		if polled.Done() {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if polled.Status != jobs.StatusCompleted {
		t.Fatalf("job did not complete: status=%q error=%q", polled.Status, polled.Error)
	}
	if len(polled.Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(polled.Transactions))
	}
}

func TestGetJobNotFound(t *testing.T) {
	app, _ := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/does-not-exist", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
