package main

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/taxlens/taxlens/internal/rates"
	"github.com/taxlens/taxlens/internal/scenarios"
	"github.com/taxlens/taxlens/internal/taxcalc"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type taxBurdenRequest struct {
	Income         float64 `json:"income"`
	Province       string  `json:"province"`
	EmploymentType string  `json:"employment_type"`
}

func (s *server) handleTaxBurden(w http.ResponseWriter, r *http.Request) {
	var req taxBurdenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := taxcalc.ComputeTotalTaxBurden(req.Income, rates.Province(req.Province), rates.EmploymentType(req.EmploymentType), s.schedule)
	if err != nil {
		switch {
		case errors.Is(err, taxcalc.ErrUnknownJurisdiction):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, taxcalc.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "calculation failed")
		}
		return
	}

	// History is a convenience; a write failure must not fail the calculation.
	if err := s.saveAnalysis(result); err != nil {
		log.Printf("failed to save analysis: %v", err)
	}

	respondJSON(w, http.StatusOK, result)
}

// bracketView is the wire form of a bracket. Upper is omitted for the open
// top bracket, which JSON cannot carry as +Inf.
type bracketView struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper,omitempty"`
	Rate  float64  `json:"rate"`
}

func bracketViews(table rates.BracketTable) []bracketView {
	views := make([]bracketView, 0, len(table))
	for _, b := range table {
		view := bracketView{Lower: b.Lower, Rate: b.Rate}
		if !math.IsInf(b.Upper, 1) {
			upper := b.Upper
			view.Upper = &upper
		}
		views = append(views, view)
	}
	return views
}

func (s *server) handleFederalRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"tax_year": s.schedule.Year,
		"brackets": bracketViews(s.schedule.Federal),
	})
}

func (s *server) handleProvincialRates(w http.ResponseWriter, r *http.Request) {
	tables := make(map[string][]bracketView, len(s.schedule.Provincial))
	for province, table := range s.schedule.Provincial {
		tables[string(province)] = bracketViews(table)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"tax_year":  s.schedule.Year,
		"provinces": tables,
	})
}

func (s *server) handlePayrollRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"tax_year": s.schedule.Year,
		"cpp_rate": s.schedule.Payroll.CPPRate,
		"cpp_max":  s.schedule.Payroll.CPPMax,
		"ei_rate":  s.schedule.Payroll.EIRate,
		"ei_max":   s.schedule.Payroll.EIMax,
	})
}

func (s *server) handleGSTHSTRates(w http.ResponseWriter, r *http.Request) {
	rateByProvince := make(map[string]float64, len(s.schedule.GSTHST))
	for province, rate := range s.schedule.GSTHST {
		rateByProvince[string(province)] = rate
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"tax_year": s.schedule.Year,
		"rates":    rateByProvince,
	})
}

type employmentTypeView struct {
	Name            string   `json:"name"`
	Deductions      []string `json:"deductions"`
	TaxImplications string   `json:"tax_implications"`
}

func (s *server) handleEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	profiles := rates.EmploymentProfiles()
	views := make([]employmentTypeView, 0, len(profiles))
	for _, t := range rates.EmploymentTypes() {
		profile := profiles[t]
		views = append(views, employmentTypeView{
			Name:            string(t),
			Deductions:      profile.Deductions,
			TaxImplications: profile.TaxImplications,
		})
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *server) handleTaxTips(w http.ResponseWriter, r *http.Request) {
	employment, ok := rates.ParseEmploymentType(r.URL.Query().Get("employment_type"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unrecognized employment_type")
		return
	}
	respondJSON(w, http.StatusOK, rates.SavingTips(employment))
}

type scenariosRequest struct {
	TotalTax   float64 `json:"total_tax"`
	Years      int     `json:"years"`
	CurrentAge int     `json:"current_age"`
}

type scenariosResponse struct {
	HomePurchase     []scenarios.HomeScenario       `json:"home_purchase"`
	InvestmentGrowth []scenarios.InvestmentScenario `json:"investment_growth"`
	AlternativeUses  []scenarios.AlternativeUse     `json:"alternative_uses"`
	DebtPayment      []scenarios.DebtScenario       `json:"debt_payment"`
	RetirementImpact []scenarios.RetirementScenario `json:"retirement_impact"`
}

func (s *server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	req := scenariosRequest{Years: 30, CurrentAge: 35}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TotalTax < 0 {
		respondError(w, http.StatusBadRequest, "total_tax must be non-negative")
		return
	}
	if req.Years <= 0 || req.CurrentAge <= 0 {
		respondError(w, http.StatusBadRequest, "years and current_age must be positive")
		return
	}

	respondJSON(w, http.StatusOK, scenariosResponse{
		HomePurchase:     scenarios.HomePurchasePotential(req.TotalTax),
		InvestmentGrowth: scenarios.InvestmentGrowth(req.TotalTax, req.Years),
		AlternativeUses:  scenarios.AlternativeUses(req.TotalTax),
		DebtPayment:      scenarios.DebtPayment(req.TotalTax),
		RetirementImpact: scenarios.RetirementImpact(req.TotalTax, req.CurrentAge),
	})
}

type shareImageRequest struct {
	TotalTax   float64 `json:"total_tax"`
	LostWealth float64 `json:"lost_wealth"`
}

func (s *server) handleShareImage(w http.ResponseWriter, r *http.Request) {
	var req shareImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Absence of an image is a normal outcome, never an error for the caller.
	url := s.images.TaxImpactImage(r.Context(), req.TotalTax, req.LostWealth)
	respondJSON(w, http.StatusOK, map[string]string{"image_url": url})
}

func (s *server) handleAnalysesList(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.listAnalyses(r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load analyses")
		return
	}
	respondJSON(w, http.StatusOK, analyses)
}
