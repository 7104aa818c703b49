package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-data-pipeline/internal/api"
	"property-data-pipeline/internal/api/handler"
	"property-data-pipeline/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, store.InitDB(filepath.Join(dir, "test.db")))
	return api.NewRouter(handler.New(filepath.Join(dir, "outputs")))
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateRunHappyPath(t *testing.T) {
	router := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"code_a": "CODE-A", "code_b": "CODE-B"},
		map[string]string{"a.csv": "AGGR_GROUP,OWNER_NAME_1,DATE_TRANSFER\ng1,john smith,2010-01-05\ng1,john smith,2010-01-05\n"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		RunID       string `json:"run_id"`
		Status      string `json:"status"`
		Rows        int    `json:"rows"`
		FileName    string `json:"file_name"`
		DownloadURL string `json:"download_url"`
		Metrics     []struct {
			Step string `json:"step"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 1, resp.Rows, "duplicate group collapsed")
	assert.Len(t, resp.Metrics, 9)
	assert.Equal(t, "merge", resp.Metrics[0].Step)
	assert.Equal(t, "finalize", resp.Metrics[8].Step)

	// The produced file is served back through the download route.
	dlReq := httptest.NewRequest(http.MethodGet, resp.DownloadURL, nil)
	dlRec := httptest.NewRecorder()
	router.ServeHTTP(dlRec, dlReq)
	require.Equal(t, http.StatusOK, dlRec.Code)
	content, _ := io.ReadAll(dlRec.Body)
	assert.Contains(t, string(content), "NAME")
	assert.Contains(t, string(content), "CODE-A")

	// Metrics persisted against the run.
	mReq := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+resp.RunID+"/metrics", nil)
	mRec := httptest.NewRecorder()
	router.ServeHTTP(mRec, mReq)
	require.Equal(t, http.StatusOK, mRec.Code)
	assert.Contains(t, mRec.Body.String(), "delete_columns")
}

func TestCreateRunMissingCodes(t *testing.T) {
	router := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"code_a": "CODE-A"},
		map[string]string{"a.csv": "ID\n1\n"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "both Mail_CallRail codes are required")
}

func TestCreateRunNoFiles(t *testing.T) {
	router := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"code_a": "A", "code_b": "B"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRunPipelineAbort(t *testing.T) {
	router := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"code_a": "A", "code_b": "B"},
		map[string]string{"bad.csv": "ID,NAME\n1,alice,extra\n"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		RunID  string `json:"run_id"`
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Contains(t, resp.Error, "step merge")

	// Failure recorded against the run.
	eReq := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+resp.RunID+"/errors", nil)
	eRec := httptest.NewRecorder()
	router.ServeHTTP(eRec, eReq)
	require.Equal(t, http.StatusOK, eRec.Code)
	assert.Contains(t, eRec.Body.String(), "step merge")
}

func TestGetRunNotFound(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadMissingFile(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/download/some-run/none.csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
