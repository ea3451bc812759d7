package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/username/propfolio/backend/src/config"
	"github.com/username/propfolio/backend/src/logger"
	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/processors"
	"github.com/username/propfolio/backend/src/security/validation"
	"github.com/username/propfolio/backend/src/utils"
)

type LoanHandler struct {
	loanProcessor *processors.LoanProcessor
}

func NewLoanHandler(loanProcessor *processors.LoanProcessor) *LoanHandler {
	return &LoanHandler{
		loanProcessor: loanProcessor,
	}
}

type loanScheduleRequest struct {
	PropertyID          string         `json:"propertyId"`
	LoanPrincipalCents  models.Cents   `json:"loanPrincipalCents"`
	InterestRatePct     models.Percent `json:"interestRatePct"`
	AmortizationRatePct models.Percent `json:"amortizationRatePct"`
	StartDate           string         `json:"startDate"` // YYYY-MM-DD, defaults to today
}

type loanScheduleResponse struct {
	Payments models.LoanPaymentBreakdown `json:"payments"`
	Expenses []models.LoanExpense        `json:"expenses"`
}

// HandleGetPaymentSchedule splits a property loan into its monthly
// interest/amortization payments and returns the expense records for the
// twelve months following the start date.
func (h *LoanHandler) HandleGetPaymentSchedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.Cfg.MaxRequestBodyBytes)

	var req loanScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("Failed to decode loan schedule request", "error", err)
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loan := models.PropertyLoanData{
		LoanPrincipalCents:  req.LoanPrincipalCents,
		InterestRatePct:     req.InterestRatePct,
		AmortizationRatePct: req.AmortizationRatePct,
	}
	if err := validation.ValidateLoanData(loan); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			utils.SendJSONError(w, "Invalid startDate, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		start = parsed
	}

	expenses := h.loanProcessor.GenerateNext12MonthsExpenses(req.PropertyID, loan, start)
	if expenses == nil {
		expenses = []models.LoanExpense{}
	}
	response := loanScheduleResponse{
		Payments: h.loanProcessor.CalculateMonthlyPayments(loan),
		Expenses: expenses,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.L.Error("Error encoding loan schedule", "error", err)
	}
}
