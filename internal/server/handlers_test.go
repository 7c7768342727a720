package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/benshabbat/receipt-scanner/internal/common"
	"github.com/benshabbat/receipt-scanner/internal/engine"
	"github.com/benshabbat/receipt-scanner/internal/export"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(engine.Config{}, nil, logger)
	return New(common.ServerConfig{}, eng, export.NewService("Receipt", logger), logger)
}

func postJSON(t *testing.T, srv *Server, path string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Equal(t, "ok", result["status"])
}

func TestParseEndpoint(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	status, body := postJSON(t, srv, "/api/parse", ParseRequest{
		Text: "רמי לוי\nחלב 3% 5.90\nלחם פרוס 4.50\nסה\"כ: 10.40\n",
	})
	require.Equal(t, fiber.StatusOK, status)

	var result ParseResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.Equal(t, "רמי לוי", result.Receipt.StoreName)
	require.Len(t, result.Receipt.Items, 2)
	require.InDelta(t, 10.40, result.Receipt.TotalAmount, 0.001)
}

func TestParseEndpoint_TooShort(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	status, _ := postJSON(t, srv, "/api/parse", ParseRequest{Text: "חלב"})
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestParseEndpoint_MissingText(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	status, _ := postJSON(t, srv, "/api/parse", ParseRequest{})
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestLinesEndpoint(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	status, body := postJSON(t, srv, "/api/lines", ParseRequest{
		Text: "רמי לוי\n-----\nחלב 3% 5.90\n",
	})
	require.Equal(t, fiber.StatusOK, status)

	var result LinesResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.Equal(t, []string{"רמי לוי", "חלב 3% 5.90"}, result.Lines)
}

func TestExportEndpoint(t *testing.T) {
	t.Parallel()

	srv := setupTestServer(t)
	raw, err := json.Marshal(ParseRequest{
		Text: "רמי לוי\nחלב 3% 5.90\nסה\"כ: 5.90\n",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, body)
}
