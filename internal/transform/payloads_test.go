package transform

import (
	"testing"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegimeComparison_Flat(t *testing.T) {
	rules := domain.DefaultRulesFY2024_25()

	req := FromRegimeComparison(domain.RegimeComparisonRequest{GrossSalary: amount(800000)}, rules)

	assert.True(t, req.GrossSalary.Equal(decimal.NewFromInt(800000)))
	assert.True(t, req.StandardDeduction.Equal(decimal.NewFromInt(50000)), "zero standard deduction means default")
	assert.True(t, req.Chapter6ADeductions.IsZero())
	assert.Empty(t, req.CapitalGains)
}

func TestFromRegimeComparison_Nested(t *testing.T) {
	payload := domain.RegimeComparisonRequest{
		Income: domain.IncomeBreakdown{
			Salary:        decimal.NewFromInt(1000000),
			HouseProperty: decimal.NewFromInt(50000),
			Business:      decimal.NewFromInt(100000),
			OtherSources:  decimal.NewFromInt(20000),
			CapitalGains:  decimal.NewFromInt(180000),
		},
		Deductions: domain.DeductionsPayload{
			StandardDeduction: decimal.NewFromInt(75000),
			Section80C:        decimal.NewFromInt(100000),
			Section80D:        decimal.NewFromInt(25000),
			Other:             decimal.NewFromInt(10000),
			HomeLoanInterest:  decimal.NewFromInt(200000),
			EmployerNPS:       decimal.NewFromInt(30000),
			InterestSavings:   decimal.NewFromInt(8000),
			IsSenior:          true,
			HasVDA:            true,
		},
	}

	req := FromRegimeComparison(payload, domain.DefaultRulesFY2024_25())

	assert.True(t, req.GrossSalary.Equal(decimal.NewFromInt(1170000)))
	assert.True(t, req.StandardDeduction.Equal(decimal.NewFromInt(75000)))
	assert.True(t, req.Chapter6ADeductions.Equal(decimal.NewFromInt(135000)))
	assert.True(t, req.OtherDeductions.Equal(decimal.NewFromInt(200000)))
	assert.True(t, req.EmployerNPS.Equal(decimal.NewFromInt(30000)))
	assert.True(t, req.InterestSavings.Equal(decimal.NewFromInt(8000)))
	assert.True(t, req.IsSenior)
	assert.True(t, req.HasVDA)

	require.Len(t, req.CapitalGains, 1)
	assert.Equal(t, "ltcg", req.CapitalGains[0].Type)
	assert.Equal(t, "equity", req.CapitalGains[0].Asset)
	assert.True(t, req.CapitalGains[0].Amount.Equal(decimal.NewFromInt(180000)))
}

func TestFromRegimeComparison_FlatSalaryWinsAndSection24BPreferred(t *testing.T) {
	payload := domain.RegimeComparisonRequest{
		GrossSalary: amount(900000),
		Income:      domain.IncomeBreakdown{Salary: decimal.NewFromInt(1), OtherSources: decimal.NewFromInt(10000)},
		Deductions: domain.DeductionsPayload{
			Section24B:       decimal.NewFromInt(150000),
			HomeLoanInterest: decimal.NewFromInt(99999),
		},
	}

	req := FromRegimeComparison(payload, domain.DefaultRulesFY2024_25())

	assert.True(t, req.GrossSalary.Equal(decimal.NewFromInt(910000)))
	assert.True(t, req.OtherDeductions.Equal(decimal.NewFromInt(150000)))
}

func TestSummarizeRegimes(t *testing.T) {
	rules := domain.DefaultRulesFY2024_25()
	req := FromRegimeComparison(domain.RegimeComparisonRequest{GrossSalary: amount(750000)}, rules)
	result := calculation.NewTaxEngineWithRules(rules).Compute(config.Normalize(&req, rules))

	summary := SummarizeRegimes(result)

	assert.Equal(t, domain.RegimePair{Old: 700000, New: 700000}, summary.TaxableIncome)
	assert.Equal(t, domain.RegimePair{Old: 29600, New: 1000}, summary.FinalTax)
	assert.Equal(t, domain.Rupees(28600), summary.Savings)
	assert.Equal(t, domain.RegimeNew, summary.Recommended)
	assert.Equal(t, int64(97), summary.SavingsPercentage)
	assert.Equal(t, domain.RebateApplied{Old: 25000, New: 25000, QualifiesOld: true, QualifiesNew: true}, summary.RebateApplied)
	assert.Equal(t, domain.ITR1, summary.ITRForm)
	require.NotNil(t, summary.RebateMessage)
}

func TestFromForm16(t *testing.T) {
	rules := domain.DefaultRulesFY2024_25()

	_, err := FromForm16(domain.Form16Request{}, rules)
	assert.ErrorIs(t, err, domain.ErrMissingExtractedData)

	data := &domain.Form16Data{}
	data.Income.Salary = decimal.NewFromInt(1250000)
	data.Deductions.Total = decimal.NewFromInt(150000)

	req, err := FromForm16(domain.Form16Request{ExtractedData: data}, rules)
	require.NoError(t, err)

	assert.True(t, req.GrossSalary.Equal(decimal.NewFromInt(1250000)))
	assert.True(t, req.StandardDeduction.Equal(decimal.NewFromInt(50000)))
	assert.True(t, req.Chapter6ADeductions.Equal(decimal.NewFromInt(150000)))
	assert.True(t, req.OtherDeductions.IsZero())
	assert.True(t, req.EmployerNPS.IsZero())
	assert.False(t, req.IsSenior)
	assert.False(t, req.HasVDA)
	assert.NotNil(t, req.CapitalGains)
	assert.Empty(t, req.CapitalGains)
	assert.Empty(t, config.Validate(&req))
}
