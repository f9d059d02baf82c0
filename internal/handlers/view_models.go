package handlers

import (
	"familyfinance/internal/models"
	"familyfinance/internal/scenario"
	"familyfinance/internal/service"
)

type MoneyView struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type ConvertRequest struct {
	Amount int64  `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type ConvertResponse struct {
	From MoneyView `json:"from"`
	To   MoneyView `json:"to"`
}

type IncomeRequest struct {
	Job   scenario.Job `json:"job"`
	Hours *int         `json:"hours"`
}

type IncomeResponse struct {
	Title  string `json:"title"`
	Pay    string `json:"pay"`
	Hours  int    `json:"hours"`
	Income int64  `json:"income"`
}

type MemberView struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Description string `json:"description"`
	JobRejected bool   `json:"job_rejected"`
	Married     bool   `json:"married"`
	Income      int64  `json:"income"`
}

type HouseholdResponse struct {
	Name             string       `json:"name,omitempty"`
	Members          []MemberView `json:"members"`
	RejectedChildren []string     `json:"rejected_children"`
	HouseholdIncome  float64      `json:"household_income"`
	BaseCurrency     string       `json:"base_currency"`
	Total            MoneyView    `json:"total"`
}

type CurrenciesResponse struct {
	Base       string   `json:"base"`
	Currencies []string `json:"currencies"`
}

func newMoneyView(m models.Money) MoneyView {
	return MoneyView{Amount: m.Amount, Currency: m.Currency.String()}
}

func newHouseholdResponse(r *service.Report) HouseholdResponse {
	resp := HouseholdResponse{
		Name:             r.Name,
		Members:          make([]MemberView, 0, len(r.Members)),
		RejectedChildren: r.RejectedChildren,
		HouseholdIncome:  r.HouseholdIncome,
		BaseCurrency:     r.BaseCurrency.String(),
		Total:            newMoneyView(r.Total),
	}
	if resp.RejectedChildren == nil {
		resp.RejectedChildren = []string{}
	}
	for _, m := range r.Members {
		resp.Members = append(resp.Members, MemberView{
			ID:          m.ID.String(),
			Role:        m.Role,
			Description: m.Description,
			JobRejected: m.JobRejected,
			Married:     m.Married,
			Income:      m.Income,
		})
	}
	return resp
}
