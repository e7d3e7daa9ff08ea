package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTaxRequestUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		yaml      string
		wantGross *int64
		wantGains int
		check     func(t *testing.T, r TaxRequest)
	}{
		{
			name:      "number",
			json:      `{"grossSalary": 800000, "isSenior": true}`,
			yaml:      "grossSalary: 800000\nisSenior: true\n",
			wantGross: ptrInt(800000),
			check: func(t *testing.T, r TaxRequest) {
				assert.True(t, r.IsSenior)
			},
		},
		{
			name: "quoted number is not an amount",
			json: `{"grossSalary": "500000"}`,
			yaml: `grossSalary: "500000"`,
		},
		{
			name: "text and bool are not amounts",
			json: `{"grossSalary": "abc", "chapter6ADeductions": true}`,
			yaml: "grossSalary: abc\nchapter6ADeductions: true\n",
			check: func(t *testing.T, r TaxRequest) {
				assert.Nil(t, r.Chapter6ADeductions)
			},
		},
		{
			name:      "capital gains mapping ignored",
			json:      `{"grossSalary": 500000, "capitalGains": {"a": 1}}`,
			yaml:      "grossSalary: 500000\ncapitalGains:\n  a: 1\n",
			wantGross: ptrInt(500000),
			check: func(t *testing.T, r TaxRequest) {
				assert.Nil(t, r.CapitalGains)
			},
		},
		{
			name:      "non-numeric gain amount and bad entries",
			json:      `{"grossSalary": 1, "capitalGains": [{"type": "ltcg", "asset": "equity", "amount": "x"}, 5, {"type": 7, "amount": 10, "rate": 0.2}]}`,
			yaml:      "grossSalary: 1\ncapitalGains:\n  - {type: ltcg, asset: equity, amount: x}\n  - 5\n  - {type: 7, amount: 10, rate: 0.2}\n",
			wantGross: ptrInt(1),
			wantGains: 3,
			check: func(t *testing.T, r TaxRequest) {
				assert.Equal(t, "ltcg", r.CapitalGains[0].Type)
				assert.Equal(t, AssetEquity, r.CapitalGains[0].Asset)
				assert.Nil(t, r.CapitalGains[0].Amount)
				assert.Equal(t, CapitalGainRequest{}, r.CapitalGains[1])
				assert.Empty(t, r.CapitalGains[2].Type)
				require.NotNil(t, r.CapitalGains[2].Rate)
				assert.True(t, r.CapitalGains[2].Rate.Equal(decimal.NewFromFloat(0.2)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON, fromYAML TaxRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &fromJSON))
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &fromYAML))

			for _, r := range []TaxRequest{fromJSON, fromYAML} {
				if tt.wantGross == nil {
					assert.Nil(t, r.GrossSalary)
				} else {
					require.NotNil(t, r.GrossSalary)
					assert.True(t, r.GrossSalary.Equal(decimal.NewFromInt(*tt.wantGross)))
				}
				assert.Len(t, r.CapitalGains, tt.wantGains)
				if tt.check != nil {
					tt.check(t, r)
				}
			}
		})
	}
}

func TestTaxRequestUnmarshal_Malformed(t *testing.T) {
	var r TaxRequest
	assert.Error(t, json.Unmarshal([]byte(`{"grossSalary": `), &r))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &r))
	assert.Error(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &r))
}

func ptrInt(v int64) *int64 {
	return &v
}
