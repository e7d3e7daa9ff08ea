package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/transform"
	"github.com/shopspring/decimal"
)

// Solver finds the deduction level at which the old regime stops costing
// more than the new one. Old-regime tax never rises as deductions grow,
// so the search is a bisection over the deduction total.
type Solver struct {
	CalcEngine *calculation.TaxEngine
	Parser     *config.InputParser
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.TaxEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Parser:     config.NewInputParserWithRules(calcEngine.Rules),
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.TaxEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// probe is one evaluation of the base request at a given deduction total
type probe struct {
	favoursOld bool
	oldTax     domain.Rupees
}

// Solve runs the break-even search for one request
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Base == nil {
		return nil, &BreakEvenError{Operation: "validate_request", Message: "base request is required", Cause: domain.ErrInvalidInput}
	}
	if err := s.Parser.ValidateRequest(req.Base); err != nil {
		return nil, &BreakEvenError{Operation: "validate_request", Message: "invalid base request", Cause: err}
	}

	base := s.Parser.Normalize(req.Base)
	baseResult := s.CalcEngine.Compute(base)
	current := base.Chapter6ADeductions.Add(base.OtherDeductions)

	upper := base.GrossSalary
	if req.MaxDeduction != nil {
		if req.MaxDeduction.IsNegative() {
			return nil, &BreakEvenError{
				Operation: "validate_request",
				Message:   fmt.Sprintf("max deduction must be non-negative, got %s", req.MaxDeduction),
				Cause:     domain.ErrInvalidInput,
			}
		}
		upper = *req.MaxDeduction
	}
	upper = upper.Ceil()

	result := &Result{
		Name:              req.Name,
		AlreadyFavoursOld: baseResult.Comparison.Recommended == domain.RegimeOld,
		CurrentDeductions: domain.RoundRupees(current),
		CurrentOldTax:     baseResult.OldRegime.FinalTaxPayable,
		NewRegimeTax:      baseResult.NewRegime.FinalTaxPayable,
	}

	low, err := s.evaluate(req.Base, decimal.Zero)
	if err != nil {
		return nil, err
	}
	if low.favoursOld {
		result.Reachable = true
		result.OldTaxAtBreakEven = low.oldTax
		result.ConvergenceInfo = "old regime is no costlier even without deductions"
		s.finish(result, decimal.Zero, current)
		return result, nil
	}

	high, err := s.evaluate(req.Base, upper)
	if err != nil {
		return nil, err
	}
	if !high.favoursOld {
		result.OldTaxAtBreakEven = high.oldTax
		result.ConvergenceInfo = fmt.Sprintf("old regime stays costlier up to %s of deductions", domain.FormatINR(upper))
		s.CalcEngine.Logger.Debugf("break-even %q unreachable below %s", req.Name, upper)
		return result, nil
	}

	lo, hi := decimal.Zero, upper
	hiTax := high.oldTax
	two := decimal.NewFromInt(2)
	iterations := 0

	for hi.Sub(lo).GreaterThan(s.Options.Tolerance) && iterations < s.Options.MaxIterations {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two).Floor()
		if mid.Equal(lo) {
			break
		}
		iterations++

		p, err := s.evaluate(req.Base, mid)
		if err != nil {
			return nil, err
		}
		s.CalcEngine.Logger.Debugf("break-even %q probe %s: old=%d favours old=%t", req.Name, mid, p.oldTax, p.favoursOld)
		if p.favoursOld {
			hi, hiTax = mid, p.oldTax
		} else {
			lo = mid
		}
	}

	result.Reachable = true
	result.Iterations = iterations
	result.OldTaxAtBreakEven = hiTax
	if hi.Sub(lo).GreaterThan(s.Options.Tolerance) {
		result.ConvergenceInfo = fmt.Sprintf("stopped after %d iterations within %s", iterations, domain.FormatINR(hi.Sub(lo)))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("converged after %d iterations", iterations)
	}
	s.finish(result, hi, current)
	return result, nil
}

// SolveScenarios runs the search for every scenario in a file, in order
func (s *Solver) SolveScenarios(ctx context.Context, file *domain.ScenarioFile, maxDeduction *decimal.Decimal) ([]Result, error) {
	if file == nil || len(file.Scenarios) == 0 {
		return nil, &BreakEvenError{Operation: "solve_scenarios", Message: "no scenarios provided", Cause: domain.ErrInvalidInput}
	}

	results := make([]Result, 0, len(file.Scenarios))
	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		r, err := s.Solve(ctx, Request{Name: sc.Name, Base: &sc.Request, MaxDeduction: maxDeduction})
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		results = append(results, *r)
	}
	return results, nil
}

func (s *Solver) finish(result *Result, breakEven, current decimal.Decimal) {
	result.BreakEvenDeduction = domain.RoundRupees(breakEven)
	result.AdditionalNeeded = domain.RoundRupees(decimal.Max(decimal.Zero, breakEven.Sub(current)))
	result.Headroom = domain.RoundRupees(decimal.Max(decimal.Zero, current.Sub(breakEven)))
}

// evaluate computes base with its old-regime-only deductions replaced by
// total, filling Chapter VI-A up to its cap before other deductions.
func (s *Solver) evaluate(base *domain.TaxRequest, total decimal.Decimal) (probe, error) {
	chapter6A := decimal.Min(total, s.CalcEngine.Rules.Chapter6ACap)
	modified, err := transform.ApplyTransforms(base, []transform.RequestTransform{
		&transform.SetChapter6A{Amount: chapter6A},
		&transform.SetOtherDeductions{Amount: total.Sub(chapter6A)},
	})
	if err != nil {
		return probe{}, &BreakEvenError{Operation: "evaluate", Message: "failed to apply deductions", Cause: err}
	}

	r := s.CalcEngine.Compute(s.Parser.Normalize(modified))
	return probe{
		favoursOld: r.Comparison.Recommended == domain.RegimeOld,
		oldTax:     r.OldRegime.FinalTaxPayable,
	}, nil
}
