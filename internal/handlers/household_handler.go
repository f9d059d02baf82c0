package handlers

import (
	"encoding/json"
	"net/http"

	"familyfinance/internal/logger"
	"familyfinance/internal/models"
	"familyfinance/internal/scenario"
	"familyfinance/internal/service"
)

// HouseholdHandler serves the money, job and household endpoints
type HouseholdHandler struct {
	householdService *service.HouseholdService
	log              *logger.Logger
}

// NewHouseholdHandler creates a new household handler
func NewHouseholdHandler(householdService *service.HouseholdService, log *logger.Logger) *HouseholdHandler {
	return &HouseholdHandler{
		householdService: householdService,
		log:              log,
	}
}

// Convert converts an amount between currencies
func (h *HouseholdHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !h.decode(w, r, &req) {
		return
	}

	converted, err := h.householdService.Convert(req.Amount, req.From, req.To)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	// Already validated by the service
	source, _ := models.ParseCurrency(req.From)

	respondJSON(w, http.StatusOK, ConvertResponse{
		From: MoneyView{Amount: req.Amount, Currency: source.String()},
		To:   newMoneyView(converted),
	})
}

// Income calculates the income of a single job.
// Hours default to the household year when omitted.
func (h *HouseholdHandler) Income(w http.ResponseWriter, r *http.Request) {
	var req IncomeRequest
	if !h.decode(w, r, &req) {
		return
	}

	hours := models.HouseholdHours
	if req.Hours != nil {
		hours = *req.Hours
	}

	spec, err := req.Job.ToSpec("job")
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	income, err := h.householdService.Income(spec, hours)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, IncomeResponse{
		Title:  income.Title,
		Pay:    income.Pay,
		Hours:  income.Hours,
		Income: income.Income,
	})
}

// EvaluateHousehold builds the described family and reports its income
func (h *HouseholdHandler) EvaluateHousehold(w http.ResponseWriter, r *http.Request) {
	var req scenario.Household
	if !h.decode(w, r, &req) {
		return
	}

	sc, err := req.ToScenario()
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	report, err := h.householdService.Evaluate(sc)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, newHouseholdResponse(report))
}

// Currencies lists the supported currencies
func (h *HouseholdHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	resp := CurrenciesResponse{Base: h.householdService.BaseCurrency().String()}
	for _, c := range models.SupportedCurrencies() {
		resp.Currencies = append(resp.Currencies, c.String())
	}
	respondJSON(w, http.StatusOK, resp)
}

// Health reports that the server is up
func (h *HouseholdHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HouseholdHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.log.Debug("invalid request body", "path", r.URL.Path, "error", err, "request_id", GetRequestID(r.Context()))
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: ErrInvalidJSON})
		return false
	}
	return true
}
