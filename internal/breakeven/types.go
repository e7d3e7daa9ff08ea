package breakeven

import (
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// Request describes one break-even search
type Request struct {
	Name         string
	Base         *domain.TaxRequest
	MaxDeduction *decimal.Decimal // upper bound of the search; defaults to the gross salary
}

// Result is the outcome of a break-even search.
//
// BreakEvenDeduction is the smallest total of old-regime-only deductions
// (Chapter VI-A plus other deductions) at which the old regime's final tax
// is no higher than the new regime's.
type Result struct {
	Name               string        `json:"name,omitempty"`
	Reachable          bool          `json:"reachable"`
	AlreadyFavoursOld  bool          `json:"alreadyFavoursOld"`
	CurrentDeductions  domain.Rupees `json:"currentDeductions"`
	BreakEvenDeduction domain.Rupees `json:"breakEvenDeduction"`
	AdditionalNeeded   domain.Rupees `json:"additionalNeeded"`
	Headroom           domain.Rupees `json:"headroom"`
	CurrentOldTax      domain.Rupees `json:"currentOldTax"`
	NewRegimeTax       domain.Rupees `json:"newRegimeTax"`
	OldTaxAtBreakEven  domain.Rupees `json:"oldTaxAtBreakEven"`
	Iterations         int           `json:"iterations"`
	ConvergenceInfo    string        `json:"convergenceInfo,omitempty"`
}

// SolverOptions configures the solver
type SolverOptions struct {
	Tolerance     decimal.Decimal // width of the final bracket, in rupees
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 60,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
