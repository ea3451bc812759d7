package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/propfolio/backend/src/config"
	"github.com/username/propfolio/backend/src/logger"
	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/processors"
	"github.com/username/propfolio/backend/src/utils"
)

type ROIHandler struct {
	roiCalculator processors.ROICalculator
}

func NewROIHandler(roiCalculator processors.ROICalculator) *ROIHandler {
	return &ROIHandler{
		roiCalculator: roiCalculator,
	}
}

// HandleCalculateROI computes the standalone ROI metrics for the property
// detail view. Degenerate inputs produce zero ratios rather than errors,
// so the only failure mode here is a malformed body.
func (h *ROIHandler) HandleCalculateROI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.Cfg.MaxRequestBodyBytes)

	var input models.ROIInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.L.Warn("Failed to decode ROI request", "error", err)
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	output := h.roiCalculator.Calculate(input)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(output); err != nil {
		logger.L.Error("Error encoding ROI result", "error", err)
	}
}
