package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func createScenarioFile() *domain.ScenarioFile {
	return &domain.ScenarioFile{
		Base: "current",
		Scenarios: []domain.NamedRequest{
			{Name: "current", Request: domain.TaxRequest{GrossSalary: amount(1200000)}},
			{Name: "max-80c", Description: "Claim the full 80C limit", Request: domain.TaxRequest{
				GrossSalary:         amount(1200000),
				Chapter6ADeductions: amount(150000),
			}},
			{Name: "lower-salary", Request: domain.TaxRequest{
				GrossSalary:         amount(800000),
				Chapter6ADeductions: amount(150000),
			}},
		},
	}
}

func TestCompareEngine_Compare(t *testing.T) {
	ce := NewCompareEngine(calculation.NewTaxEngine())

	compSet, err := ce.Compare(context.Background(), createScenarioFile(), CompareOptions{})
	require.NoError(t, err)

	assert.Equal(t, "current", compSet.BaseScenarioName)
	assert.Equal(t, "FY2024-25", compSet.FinancialYear)

	base := compSet.BaseResult
	require.NotNil(t, base)
	assert.Equal(t, domain.Rupees(163800), base.FinalOld)
	assert.Equal(t, domain.Rupees(85800), base.FinalNew)
	assert.Equal(t, domain.RegimeNew, base.Recommended)
	assert.Equal(t, domain.Rupees(85800), base.BestTax)
	assert.Equal(t, "7.15", base.EffectiveRate.StringFixed(2))

	require.Len(t, compSet.AlternativeResults, 2)

	max80c := compSet.AlternativeResults[0]
	assert.Equal(t, "max-80c", max80c.ScenarioName)
	assert.Equal(t, "Claim the full 80C limit", max80c.Description)
	assert.Equal(t, domain.Rupees(117000), max80c.FinalOld)
	assert.Equal(t, domain.Rupees(0), max80c.TaxDiffFromBase)
	assert.False(t, max80c.RegimeChanged)

	lower := compSet.AlternativeResults[1]
	assert.Equal(t, domain.Rupees(8800), lower.BestTax)
	assert.Equal(t, domain.RegimeOld, lower.Recommended)
	assert.Equal(t, domain.Rupees(-77000), lower.TaxDiffFromBase)
	assert.True(t, lower.RegimeChanged)

	require.NotEmpty(t, compSet.Recommendations)
	assert.Equal(t, "Lowest Tax: lower-salary saves ₹77,000 compared with current", compSet.Recommendations[0])
	assert.Contains(t, compSet.Recommendations, "Regime Switch: lower-salary favours the old regime (base favours new)")
}

func TestCompareEngine_TemplatesAndTransforms(t *testing.T) {
	ce := NewCompareEngine(calculation.NewTaxEngine())
	file := createScenarioFile()
	file.Scenarios = file.Scenarios[:1]

	compSet, err := ce.Compare(context.Background(), file, CompareOptions{
		Templates:  []string{"employer_nps_10"},
		Transforms: []string{"add_gain:type=ltcg,asset=equity,amount=200000"},
	})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 2)

	nps := compSet.AlternativeResults[0]
	assert.Equal(t, "current_employer_nps_10", nps.ScenarioName)
	assert.Equal(t, "Route 10% of salary through employer NPS", nps.Description)
	assert.Equal(t, domain.Rupees(67080), nps.BestTax)
	assert.Equal(t, domain.Rupees(-18720), nps.TaxDiffFromBase)
	assert.Equal(t, "-21.82", nps.TaxPctFromBase.StringFixed(2))

	gain := compSet.AlternativeResults[1]
	assert.Equal(t, "current_add_gain", gain.ScenarioName)
	assert.Equal(t, domain.Rupees(96200), gain.BestTax)
	assert.Equal(t, domain.Rupees(10400), gain.TaxDiffFromBase)
	assert.Equal(t, domain.ITR2, gain.ITRForm)

	assert.Equal(t, "Lowest Tax: current_employer_nps_10 saves ₹18,720 compared with current", compSet.Recommendations[0])
	assert.Contains(t, compSet.Recommendations, "Filing: current_add_gain requires ITR-2 instead of ITR-1")
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := NewCompareEngine(calculation.NewTaxEngine())
	ctx := context.Background()

	_, err := ce.Compare(ctx, &domain.ScenarioFile{}, CompareOptions{})
	assert.Error(t, err)

	_, err = ce.Compare(ctx, createScenarioFile(), CompareOptions{BaseScenarioName: "missing"})
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)

	_, err = ce.Compare(ctx, createScenarioFile(), CompareOptions{Templates: []string{"nope"}})
	assert.ErrorContains(t, err, "template nope not found")

	_, err = ce.Compare(ctx, createScenarioFile(), CompareOptions{Transforms: []string{"bogus:x=1"}})
	assert.ErrorContains(t, err, "unknown transform")

	invalid := createScenarioFile()
	invalid.Scenarios[2].Request.GrossSalary = amount(-1)
	_, err = ce.Compare(ctx, invalid, CompareOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompareEngine_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCompareEngine(calculation.NewTaxEngine()).Compare(ctx, createScenarioFile(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateRecommendations_BaseIsLowest(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "base",
		BaseResult:       &ComparisonResult{ScenarioName: "base", BestTax: 100, Recommended: domain.RegimeNew, ITRForm: domain.ITR1},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "alt", BestTax: 200, Recommended: domain.RegimeNew, ITRForm: domain.ITR1},
		},
	}

	recs := GenerateRecommendations(compSet)

	assert.Equal(t, []string{"Lowest Tax: base already has the lowest tax of all scenarios"}, recs)
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: compSet.BaseResult}))
}

func TestMetricsCalculator_ZeroBase(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{BestTax: 0, TaxPctFromBase: decimal.Zero}
	alt := ComparisonResult{BestTax: 500, TaxPctFromBase: decimal.Zero}

	compared := mc.CalculateComparison(alt, base)

	assert.Equal(t, domain.Rupees(500), compared.TaxDiffFromBase)
	assert.True(t, compared.TaxPctFromBase.IsZero())
}
