package calculation

import (
	"testing"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gain(kind domain.GainType, asset string, amount int64, rate *float64) domain.CapitalGainEvent {
	ev := domain.CapitalGainEvent{Type: kind, Asset: asset, Amount: decimal.NewFromInt(amount)}
	if rate != nil {
		r := decimal.NewFromFloat(*rate)
		ev.Rate = &r
	}
	return ev
}

func ratePtr(r float64) *float64 { return &r }

func TestCapitalGainsCalculator_Rates(t *testing.T) {
	calc := NewCapitalGainsCalculator(domain.DefaultRulesFY2024_25().CapitalGains)

	tests := []struct {
		name     string
		event    domain.CapitalGainEvent
		expected int64
	}{
		{"equity STCG at 15%", gain(domain.GainShortTerm, "equity", 100000, nil), 15000},
		{"equity STCG ignores override", gain(domain.GainShortTerm, "equity", 100000, ratePtr(0.30)), 15000},
		{"other STCG default rate", gain(domain.GainShortTerm, "gold", 100000, nil), 15000},
		{"other STCG with override", gain(domain.GainShortTerm, "debt", 100000, ratePtr(0.30)), 30000},
		{"other LTCG default rate", gain(domain.GainLongTerm, "property", 100000, nil), 20000},
		{"other LTCG with override", gain(domain.GainLongTerm, "property", 100000, ratePtr(0.125)), 12500},
		{"zero override falls back to default", gain(domain.GainLongTerm, "property", 100000, ratePtr(0)), 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Calculate([]domain.CapitalGainEvent{tt.event})
			assert.True(t, result.Total().Equal(decimal.NewFromInt(tt.expected)), "tax = %s", result.Total())
		})
	}
}

func TestCapitalGainsCalculator_EquityLTCGAggregate(t *testing.T) {
	calc := NewCapitalGainsCalculator(domain.DefaultRulesFY2024_25().CapitalGains)

	result := calc.Calculate([]domain.CapitalGainEvent{
		gain(domain.GainLongTerm, "equity", 120000, nil),
		gain(domain.GainLongTerm, "equity", 80000, nil),
		gain(domain.GainShortTerm, "equity", 10000, nil),
	})

	assert.True(t, result.LTCGEquity.Equal(decimal.NewFromInt(200000)))
	assert.True(t, result.LTCGEquityTaxable.Equal(decimal.NewFromInt(100000)))
	assert.True(t, result.LTCGEquityTax.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.PerEventTax.Equal(decimal.NewFromInt(1500)))
	assert.True(t, result.Total().Equal(decimal.NewFromInt(11500)))

	summary := result.Summary()
	require.Len(t, summary.Detail, 3)
	assert.Equal(t, "LTCG equity", summary.Detail[0].Desc)
	assert.Equal(t, "10% on amount >₹1,00,000", summary.Detail[0].RateHint)
	assert.Nil(t, summary.Detail[0].Tax)
	assert.Nil(t, summary.Detail[0].Rate)

	stcg := summary.Detail[2]
	assert.Equal(t, "STCG equity", stcg.Desc)
	require.NotNil(t, stcg.Tax)
	assert.Equal(t, domain.Rupees(1500), *stcg.Tax)
	require.NotNil(t, stcg.Rate)
	assert.InDelta(t, 0.15, *stcg.Rate, 1e-9)
	assert.Equal(t, domain.Rupees(11500), summary.TotalTax)
}

func TestCapitalGainsCalculator_DescriptionWithoutAsset(t *testing.T) {
	calc := NewCapitalGainsCalculator(domain.DefaultRulesFY2024_25().CapitalGains)

	result := calc.Calculate([]domain.CapitalGainEvent{gain(domain.GainShortTerm, "", 1000, nil)})

	require.Len(t, result.Lines, 1)
	assert.Equal(t, "STCG", result.Lines[0].Desc)
}

func TestCapitalGainsCalculator_NoEvents(t *testing.T) {
	calc := NewCapitalGainsCalculator(domain.DefaultRulesFY2024_25().CapitalGains)

	summary := calc.Calculate(nil).Summary()

	assert.NotNil(t, summary.Detail)
	assert.Empty(t, summary.Detail)
	assert.Equal(t, domain.Rupees(0), summary.TotalTax)
}
