package domain

import (
	"github.com/shopspring/decimal"
)

// RegimeComparisonRequest accepts either a flat grossSalary or nested
// income/deduction blocks, as sent by the quick-compare form.
type RegimeComparisonRequest struct {
	GrossSalary *decimal.Decimal  `yaml:"grossSalary,omitempty" json:"grossSalary,omitempty"`
	Income      IncomeBreakdown   `yaml:"income,omitempty" json:"income,omitempty"`
	Deductions  DeductionsPayload `yaml:"deductions,omitempty" json:"deductions,omitempty"`
}

// IncomeBreakdown lists income heads of the nested payload
type IncomeBreakdown struct {
	Salary        decimal.Decimal `yaml:"salary,omitempty" json:"salary,omitempty"`
	HouseProperty decimal.Decimal `yaml:"houseProperty,omitempty" json:"houseProperty,omitempty"`
	Business      decimal.Decimal `yaml:"business,omitempty" json:"business,omitempty"`
	OtherSources  decimal.Decimal `yaml:"otherSources,omitempty" json:"otherSources,omitempty"`
	CapitalGains  decimal.Decimal `yaml:"capitalGains,omitempty" json:"capitalGains,omitempty"`
}

// DeductionsPayload lists deductions of the nested payload
type DeductionsPayload struct {
	StandardDeduction decimal.Decimal `yaml:"standardDeduction,omitempty" json:"standardDeduction,omitempty"`
	Section80C        decimal.Decimal `yaml:"section80c,omitempty" json:"section80c,omitempty"`
	Section80D        decimal.Decimal `yaml:"section80d,omitempty" json:"section80d,omitempty"`
	Other             decimal.Decimal `yaml:"other,omitempty" json:"other,omitempty"`
	Section24B        decimal.Decimal `yaml:"section24b,omitempty" json:"section24b,omitempty"`
	HomeLoanInterest  decimal.Decimal `yaml:"homeLoanInterest,omitempty" json:"homeLoanInterest,omitempty"`
	EmployerNPS       decimal.Decimal `yaml:"employerNPS,omitempty" json:"employerNPS,omitempty"`
	InterestSavings   decimal.Decimal `yaml:"interestSavings,omitempty" json:"interestSavings,omitempty"`
	InterestFD        decimal.Decimal `yaml:"interestFD,omitempty" json:"interestFD,omitempty"`
	IsSenior          bool            `yaml:"isSenior,omitempty" json:"isSenior,omitempty"`
	HasVDA            bool            `yaml:"hasVDA,omitempty" json:"hasVDA,omitempty"`
}

// RegimeSummary is the condensed answer to a regime comparison
type RegimeSummary struct {
	TaxableIncome     RegimePair    `json:"taxableIncome"`
	FinalTax          RegimePair    `json:"finalTax"`
	Savings           Rupees        `json:"savings"`
	Recommended       Regime        `json:"recommended"`
	SavingsPercentage int64         `json:"savingsPercentage"`
	RebateApplied     RebateApplied `json:"rebateApplied"`
	ITRForm           ITRForm       `json:"itrForm"`
	RebateMessage     *string       `json:"rebateMessage"`
}

// RegimePair holds one figure per regime
type RegimePair struct {
	Old Rupees `json:"old"`
	New Rupees `json:"new"`
}

// RebateApplied reports the 87A rebate under each regime
type RebateApplied struct {
	Old          Rupees `json:"old"`
	New          Rupees `json:"new"`
	QualifiesOld bool   `json:"qualifiesOld"`
	QualifiesNew bool   `json:"qualifiesNew"`
}

// Form16Request wraps data extracted from a Form-16 document
type Form16Request struct {
	ExtractedData *Form16Data `yaml:"extractedData" json:"extractedData"`
}

// Form16Data is the subset of Form-16 fields used for the calculation
type Form16Data struct {
	Income struct {
		Salary            decimal.Decimal `yaml:"salary" json:"salary"`
		StandardDeduction decimal.Decimal `yaml:"standardDeduction" json:"standardDeduction"`
	} `yaml:"income" json:"income"`
	Deductions struct {
		Total decimal.Decimal `yaml:"total" json:"total"`
	} `yaml:"deductions" json:"deductions"`
}

// SuggestionRequest describes current deduction usage
type SuggestionRequest struct {
	GrossSalary       decimal.Decimal   `yaml:"grossSalary" json:"grossSalary"`
	CurrentDeductions CurrentDeductions `yaml:"currentDeductions" json:"currentDeductions"`
}

// CurrentDeductions lists the amounts already claimed
type CurrentDeductions struct {
	Section80C decimal.Decimal `yaml:"section80c" json:"section80c"`
	Section80D decimal.Decimal `yaml:"section80d" json:"section80d"`
	NPS        decimal.Decimal `yaml:"nps" json:"nps"`
}

// Suggestion is one deduction with unused headroom
type Suggestion struct {
	Section         string   `json:"section"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CurrentAmount   Rupees   `json:"currentAmount"`
	SuggestedAmount Rupees   `json:"suggestedAmount"`
	MaxLimit        Rupees   `json:"maxLimit"`
	PotentialSaving Rupees   `json:"potentialSaving"`
	Instruments     []string `json:"instruments"`
}

// SuggestionReport collects all suggestions
type SuggestionReport struct {
	Suggestions          []Suggestion `json:"suggestions"`
	TotalPotentialSaving Rupees       `json:"totalPotentialSaving"`
	Message              string       `json:"message"`
}

// NamedRequest is one what-if scenario in a scenarios file
type NamedRequest struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Request     TaxRequest `yaml:"request" json:"request"`
}

// ScenarioFile holds several scenarios to compare against a base
type ScenarioFile struct {
	Base      string         `yaml:"base" json:"base"`
	Scenarios []NamedRequest `yaml:"scenarios" json:"scenarios"`
}
