package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/taxlens/taxlens/internal/taxcalc"
)

// analysisListItem summarizes one saved tax analysis for the history view.
type analysisListItem struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"created_at"`
	Income          float64 `json:"income"`
	Province        string  `json:"province"`
	EmploymentType  string  `json:"employment_type"`
	TotalDeductions float64 `json:"total_deductions"`
	AfterTaxIncome  float64 `json:"after_tax_income"`
}

func (s *server) saveAnalysis(result *taxcalc.TaxBurdenResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO analyses (id, income, province, employment_type, total_deductions, after_tax_income, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		uuid.NewString(),
		result.Income,
		string(result.Province),
		string(result.EmploymentType),
		result.TotalDeductions,
		result.AfterTaxIncome,
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	return nil
}

func (s *server) listAnalyses(query string) ([]analysisListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, income, province, employment_type, total_deductions, after_tax_income
		FROM analyses
		WHERE (? = '' OR province LIKE ? OR employment_type LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]analysisListItem, 0)
	for rows.Next() {
		var item analysisListItem
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Income, &item.Province, &item.EmploymentType, &item.TotalDeductions, &item.AfterTaxIncome); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		analyses = append(analyses, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	return analyses, nil
}
