package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/logger"
	"github.com/ostafen/smushinfo/internal/report"
	"github.com/ostafen/smushinfo/internal/server"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostInfo(t *testing.T) {
	var logs bytes.Buffer
	h := server.New(report.Default(), logger.New(&logs, logger.InfoLevel)).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/info", []byte("NUS3"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.InfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "nus3audio", resp.Format)
	require.Equal(t, "Namco Audio Container", resp.Report)
	require.NotEmpty(t, resp.RequestID)
	require.Equal(t, resp.RequestID, rec.Header().Get(server.RequestIDHeader))

	require.Contains(t, logs.String(), "request_id="+resp.RequestID)
	require.Contains(t, logs.String(), "POST /api/v1/info 200")
}

func TestPostInfo_Extension(t *testing.T) {
	h := server.New(report.Default(), nil).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/info?ext=sqb", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.InfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "sqb", resp.Format)
	require.Equal(t, "Sound Sequence Data File", resp.Report)

	rec = do(t, h, http.MethodPost, "/api/v1/info?ext=xyz", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "unsupported", resp.Format)
	require.Equal(t, report.NoInfo, resp.Report)
}

func TestPostInfo_RequestID(t *testing.T) {
	h := server.New(report.Default(), nil).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/info", strings.NewReader(""))
	req.Header.Set(server.RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "abc", rec.Header().Get(server.RequestIDHeader))
}

func TestPostInfo_TooLarge(t *testing.T) {
	h := server.New(report.Default(), nil, server.WithMaxBodySize(4)).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/info", []byte("paracobn"))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGetFormats(t *testing.T) {
	h := server.New(report.Default(), nil).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/formats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []server.FormatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, len(format.Formats()))

	byName := make(map[string]server.FormatResponse, len(resp))
	for _, f := range resp {
		byName[f.Name] = f
	}
	require.Equal(t, []string{"-8:20584554"}, byName["nutexb"].Signatures)
	require.Equal(t, []string{"prc", "stdat", "stprm"}, byName["prc"].Extensions)
}
