package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"property-data-pipeline/internal/model"
	"property-data-pipeline/internal/pipeline"
	"property-data-pipeline/internal/store"
	"property-data-pipeline/pkg/utils"
)

const maxUploadBytes = 64 << 20

// Handler serves the run endpoints.
type Handler struct {
	outputs *utils.OutputManager
}

// New creates a handler writing output files under outputDir.
func New(outputDir string) *Handler {
	return &Handler{outputs: utils.NewOutputManager(outputDir)}
}

// CreateRun runs the pipeline over uploaded files
// @Summary Create a pipeline run
// @Description Upload one or more CSV/XLSX files plus the two Mail_CallRail codes and run the full transformation pipeline
// @Tags runs
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Input files (repeatable)"
// @Param code_a formData string true "First Mail_CallRail code"
// @Param code_b formData string true "Second Mail_CallRail code"
// @Param filename formData string false "Output file name (.csv enforced)"
// @Success 200 {object} map[string]interface{} "Run completed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Pipeline aborted"
// @Router /runs [post]
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	cfg := model.RunConfig{
		CodeA: r.FormValue("code_a"),
		CodeB: r.FormValue("code_b"),
	}
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		http.Error(w, "At least one input file is required", http.StatusBadRequest)
		return
	}

	inputs := make([]pipeline.Input, 0, len(uploads))
	for _, fh := range uploads {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read upload %s", fh.Filename), http.StatusBadRequest)
			return
		}
		defer f.Close()
		inputs = append(inputs, pipeline.Input{Name: fh.Filename, Reader: f})
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, cfg); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}
	store.UpdateRunStatus(runID, "running")

	result, err := pipeline.New(cfg).Run(inputs)
	if err != nil {
		store.UpdateRunStatus(runID, "failed")
		store.SaveRunError(runID, err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"run_id": runID,
			"status": "failed",
			"error":  err.Error(),
		})
		return
	}

	if err := store.SaveStepMetrics(runID, result.Metrics); err != nil {
		http.Error(w, "Failed to save metrics", http.StatusInternalServerError)
		return
	}

	fileName := pipeline.EnsureCSVName(r.FormValue("filename"), time.Now())
	filePath, err := h.outputs.GetOutputFilePath(runID, fileName)
	if err != nil {
		http.Error(w, "Failed to prepare output directory", http.StatusInternalServerError)
		return
	}

	out, err := os.Create(filePath)
	if err != nil {
		http.Error(w, "Failed to create output file", http.StatusInternalServerError)
		return
	}
	rowCount, err := pipeline.WriteCSV(out, result.Table)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		store.UpdateRunStatus(runID, "failed")
		store.SaveRunError(runID, err)
		http.Error(w, "Failed to write output file", http.StatusInternalServerError)
		return
	}

	size, _ := h.outputs.GetFileSize(filePath)
	store.SaveOutputFile(runID, fileName, filePath, rowCount, size)
	store.UpdateRunStatus(runID, "completed")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":       runID,
		"status":       "completed",
		"rows":         len(result.Table.Rows),
		"columns":      len(result.Table.Columns),
		"metrics":      result.Metrics,
		"file_name":    fileName,
		"download_url": h.outputs.GetDownloadURL(runID, fileName),
	})
}

// ListRuns retrieves all pipeline runs
// @Summary List runs
// @Description Get all pipeline runs with their current status
// @Tags runs
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// GetRun retrieves a specific run
// @Summary Get run
// @Description Retrieve details of a specific pipeline run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetRunMetrics retrieves the ordered step metrics for a run
// @Summary Get run metrics
// @Description Retrieve the per-step metrics recorded for a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run metrics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/metrics [get]
func (h *Handler) GetRunMetrics(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	metrics, err := store.GetStepMetrics(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":  runID,
		"metrics": metrics,
		"count":   len(metrics),
	})
}

// GetRunErrors retrieves errors recorded for a run
// @Summary Get run errors
// @Description Retrieve all errors recorded for a pipeline run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func (h *Handler) GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": runID,
		"errors": errs,
		"count":  len(errs),
	})
}

// GetRunFiles retrieves the output files recorded for a run
// @Summary Get run files
// @Description Retrieve the output files produced by a pipeline run
// @Tags files
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run files"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/files [get]
func (h *Handler) GetRunFiles(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	files, err := store.GetOutputFiles(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve files", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": runID,
		"files":  files,
		"count":  len(files),
	})
}

// DownloadFile serves a produced output file
// @Summary Download file
// @Description Download an output file from a pipeline run
// @Tags files
// @Produce application/octet-stream
// @Param id path string true "Run ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{filename} [get]
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	fileName := chi.URLParam(r, "filename")

	filePath, err := h.outputs.GetOutputFilePath(runID, fileName)
	if err != nil {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	http.ServeFile(w, r, filePath)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
