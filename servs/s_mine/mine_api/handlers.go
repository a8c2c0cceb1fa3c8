package mine_api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_db"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, constant.ErrBadRequest), errors.Is(err, constant.ErrNoInput), errors.Is(err, mine_serv.ErrStreamSave):
		status = http.StatusBadRequest
	case errors.Is(err, x_db.ErrRunNotFound):
		status = http.StatusNotFound
	case errors.Is(err, mine_serv.ErrStoreDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, map[string]string{constant.BodyKeyError: err.Error()})
}

// validateJob rejects jobs the API does not mine.
func validateJob(job mine_serv.Job) error {
	if len(job.Transactions) == 0 {
		return constant.ErrNoInput
	}
	if job.MinSupportRatio < 0 || job.MinSupportRatio > 1 {
		return fmt.Errorf("%w: min_support_ratio must be within [0, 1]", constant.ErrBadRequest)
	}
	return nil
}

// handleHealth reports liveness and whether runs are kept.
func handleHealth(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "store": svc.HasStore()})
	}
}

// handleStats returns the service counters.
func handleStats(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Metrics())
	}
}

// handleMine mines the posted transactions.
func handleMine(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var job mine_serv.Job
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, constant.MaxUploadSize))
		if err := dec.Decode(&job); err != nil {
			writeError(w, fmt.Errorf("%w: %v", constant.ErrBadRequest, err))
			return
		}
		if err := validateJob(job); err != nil {
			writeError(w, err)
			return
		}

		rep, err := svc.Mine(r.Context(), job)
		if err != nil {
			writeError(w, err)
			return
		}
		status := http.StatusOK
		if rep.RunID != "" {
			status = http.StatusCreated
		}
		writeJSON(w, status, rep)
	}
}

// handleListRuns lists stored runs; ?limit=N caps the result.
func handleListRuns(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := constant.DefaultRunsLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, fmt.Errorf("%w: limit %q", constant.ErrBadRequest, v))
				return
			}
			limit = n
		}
		runs, err := svc.Runs(r.Context(), limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

// handleGetRun returns one run with its itemsets.
func handleGetRun(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Run(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

// handleDeleteRun removes a run.
func handleDeleteRun(svc *mine_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteRun(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
