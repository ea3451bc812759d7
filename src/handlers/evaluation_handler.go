package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/propfolio/backend/src/config"
	"github.com/username/propfolio/backend/src/logger"
	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/security/validation"
	"github.com/username/propfolio/backend/src/services"
	"github.com/username/propfolio/backend/src/utils"
)

type EvaluationHandler struct {
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(service services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: service,
	}
}

// HandleEvaluate runs an evaluation. The body carries a calculationMethod
// discriminator ("basic" or "advanced") and, optionally, a saveCalculation
// flag to persist the run.
func (h *EvaluationHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.Cfg.MaxRequestBodyBytes)

	var req services.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("Failed to decode evaluation request", "error", err)
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// The engine does no validation of its own; reject bad numbers here.
	switch req.CalculationMethod {
	case "", "basic":
		if err := validation.ValidateEvaluationInput(services.ResolveBasicInput(req)); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	case "advanced":
		if err := validation.ValidateAdvancedInput(services.ResolveAdvancedInput(req)); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.evaluationService.Evaluate(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCalculationMethod) {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error running evaluation: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding evaluation result", "error", err)
	}
}

// HandleListEvaluations returns all stored evaluations, newest first.
// Supports ETag/If-None-Match so the dashboard can poll cheaply.
func (h *EvaluationHandler) HandleListEvaluations(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.evaluationService.ListEvaluations()
	if err != nil {
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving evaluations: %v", err), http.StatusInternalServerError)
		return
	}
	if evaluations == nil {
		evaluations = []models.StoredEvaluation{}
	}

	etag, err := utils.GenerateETag(evaluations)
	if err == nil {
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(evaluations); err != nil {
		logger.L.Error("Error encoding evaluation list", "error", err)
	}
}

// HandleGetEvaluation returns one stored evaluation by id.
func (h *EvaluationHandler) HandleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	evaluation, err := h.evaluationService.GetEvaluation(id)
	if err != nil {
		if errors.Is(err, services.ErrEvaluationNotFound) {
			utils.SendJSONError(w, "Evaluation not found", http.StatusNotFound)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving evaluation %s: %v", id, err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(evaluation); err != nil {
		logger.L.Error("Error encoding evaluation", "id", id, "error", err)
	}
}

// HandleDeleteEvaluation deletes one stored evaluation by id.
func (h *EvaluationHandler) HandleDeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.evaluationService.DeleteEvaluation(id); err != nil {
		if errors.Is(err, services.ErrEvaluationNotFound) {
			utils.SendJSONError(w, "Evaluation not found", http.StatusNotFound)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error deleting evaluation %s: %v", id, err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// HandleDeleteAllEvaluations wipes the stored evaluation history.
func (h *EvaluationHandler) HandleDeleteAllEvaluations(w http.ResponseWriter, r *http.Request) {
	if err := h.evaluationService.DeleteAllEvaluations(); err != nil {
		utils.SendJSONError(w, fmt.Sprintf("Error deleting evaluations: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
