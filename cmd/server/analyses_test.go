package main

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/taxlens/taxlens/internal/rates"
	"github.com/taxlens/taxlens/internal/taxcalc"
)

func TestSaveAnalysisRoundTrip(t *testing.T) {
	db := newAnalysesTestDB(t)
	srv := &server{db: db, schedule: rates.Year2024()}

	result, err := taxcalc.ComputeTotalTaxBurden(250000, rates.Ontario, rates.Employee, srv.schedule)
	if err != nil {
		t.Fatalf("ComputeTotalTaxBurden returned error: %v", err)
	}

	if err := srv.saveAnalysis(result); err != nil {
		t.Fatalf("saveAnalysis returned error: %v", err)
	}

	analyses, err := srv.listAnalyses("")
	if err != nil {
		t.Fatalf("listAnalyses returned error: %v", err)
	}

	if len(analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(analyses))
	}
	got := analyses[0]
	if got.ID == "" {
		t.Fatal("analysis has no id")
	}
	if got.Province != "Ontario" || got.EmploymentType != "Employee" {
		t.Fatalf("unexpected analysis row: %+v", got)
	}
	if got.Income != 250000 || got.TotalDeductions != result.TotalDeductions {
		t.Fatalf("unexpected amounts: %+v", got)
	}
}

func TestListAnalysesOrdersByDateDesc(t *testing.T) {
	db := newAnalysesTestDB(t)
	srv := &server{db: db}

	seedAnalysis(t, db, "a1", "2024-01-01 10:00:00", "Ontario", "Employee", 60000)
	seedAnalysis(t, db, "a3", "2024-01-03 12:00:00", "Alberta", "Contractor", 90000)
	seedAnalysis(t, db, "a2", "2024-01-02 11:00:00", "Quebec", "Self-Employed", 75000)

	analyses, err := srv.listAnalyses("")
	if err != nil {
		t.Fatalf("listAnalyses returned error: %v", err)
	}

	if len(analyses) != 3 {
		t.Fatalf("expected 3 analyses, got %d", len(analyses))
	}
	if analyses[0].Province != "Alberta" || analyses[1].Province != "Quebec" || analyses[2].Province != "Ontario" {
		t.Fatalf("analyses are not sorted desc by created_at: %+v", analyses)
	}
}

func TestListAnalysesFilterByProvinceAndEmployment(t *testing.T) {
	db := newAnalysesTestDB(t)
	srv := &server{db: db}

	seedAnalysis(t, db, "a1", "2024-01-01 10:00:00", "Ontario", "Employee", 60000)
	seedAnalysis(t, db, "a2", "2024-01-02 10:00:00", "Nova Scotia", "Self-Employed", 80000)
	seedAnalysis(t, db, "a3", "2024-01-03 10:00:00", "Ontario", "Self-Employed", 95000)

	byProvince, err := srv.listAnalyses("Ontario")
	if err != nil {
		t.Fatalf("listAnalyses province filter returned error: %v", err)
	}
	if len(byProvince) != 2 {
		t.Fatalf("expected 2 Ontario analyses, got %+v", byProvince)
	}

	byEmployment, err := srv.listAnalyses("Self-Employed")
	if err != nil {
		t.Fatalf("listAnalyses employment filter returned error: %v", err)
	}
	if len(byEmployment) != 2 {
		t.Fatalf("expected 2 self-employed analyses, got %+v", byEmployment)
	}
}

func newAnalysesTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE analyses (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			income REAL NOT NULL,
			province TEXT NOT NULL,
			employment_type TEXT NOT NULL,
			total_deductions REAL NOT NULL,
			after_tax_income REAL NOT NULL,
			result_json TEXT NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("failed creating analyses table: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func seedAnalysis(t *testing.T, db *sql.DB, id, createdAt, province, employment string, income float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO analyses (id, created_at, income, province, employment_type, total_deductions, after_tax_income, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt, income, province, employment, income*0.3, income*0.7, "{}")
	if err != nil {
		t.Fatalf("failed to seed analysis: %v", err)
	}
}
