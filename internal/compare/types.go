package compare

import (
	"fmt"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario with its key tax metrics
type ComparisonResult struct {
	ScenarioName string                    `json:"scenarioName"`
	Description  string                    `json:"description,omitempty"`
	Result       *domain.ComputationResult `json:"-"`

	// Key Metrics
	GrossSalary   domain.Rupees   `json:"grossSalary"`
	TaxableOld    domain.Rupees   `json:"taxableOld"`
	TaxableNew    domain.Rupees   `json:"taxableNew"`
	FinalOld      domain.Rupees   `json:"finalOld"`
	FinalNew      domain.Rupees   `json:"finalNew"`
	Recommended   domain.Regime   `json:"recommended"`
	BestTax       domain.Rupees   `json:"bestTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"` // best tax as % of gross salary
	ITRForm       domain.ITRForm  `json:"itrForm"`

	// Comparison to Base
	TaxDiffFromBase domain.Rupees   `json:"taxDiffFromBase"` // negative means less tax than base
	TaxPctFromBase  decimal.Decimal `json:"taxPctFromBase"`
	RegimeChanged   bool            `json:"regimeChanged"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	FinancialYear      string             `json:"financialYear"`
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from computation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one computed scenario
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.ComputationResult) ComparisonResult {
	best := result.RecommendedTax()
	metrics := ComparisonResult{
		ScenarioName:   name,
		Result:         result,
		GrossSalary:    domain.RoundRupees(result.Inputs.GrossSalary),
		TaxableOld:     result.Taxable.TaxableOld,
		TaxableNew:     result.Taxable.TaxableNew,
		FinalOld:       result.OldRegime.FinalTaxPayable,
		FinalNew:       result.NewRegime.FinalTaxPayable,
		Recommended:    result.Comparison.Recommended,
		BestTax:        best,
		EffectiveRate:  decimal.Zero,
		TaxPctFromBase: decimal.Zero,
		ITRForm:        result.ITRForm,
	}

	if result.Inputs.GrossSalary.IsPositive() {
		metrics.EffectiveRate = best.Decimal().
			Div(result.Inputs.GrossSalary).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return metrics
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TaxDiffFromBase = scenario.BestTax - base.BestTax

	if base.BestTax != 0 {
		scenario.TaxPctFromBase = scenario.TaxDiffFromBase.Decimal().
			Div(base.BestTax.Decimal()).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	scenario.RegimeChanged = scenario.Recommended != base.Recommended
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	// Find lowest tax
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.BestTax < lowestTax.BestTax {
			lowestTax = alt
		}
	}

	if lowestTax != compSet.BaseResult {
		savings := compSet.BaseResult.BestTax - lowestTax.BestTax
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.ScenarioName+" saves "+savings.String()+
				" compared with "+compSet.BaseScenarioName)
	} else {
		recommendations = append(recommendations,
			"Lowest Tax: "+compSet.BaseScenarioName+" already has the lowest tax of all scenarios")
	}

	// Flag regime switches
	for _, alt := range compSet.AlternativeResults {
		if alt.RegimeChanged {
			recommendations = append(recommendations,
				fmt.Sprintf("Regime Switch: %s favours the %s regime (base favours %s)",
					alt.ScenarioName, alt.Recommended, compSet.BaseResult.Recommended))
		}
	}

	// Flag scenarios that move the return to ITR-2
	for _, alt := range compSet.AlternativeResults {
		if alt.ITRForm != compSet.BaseResult.ITRForm {
			recommendations = append(recommendations,
				fmt.Sprintf("Filing: %s requires %s instead of %s",
					alt.ScenarioName, alt.ITRForm, compSet.BaseResult.ITRForm))
		}
	}

	return recommendations
}
