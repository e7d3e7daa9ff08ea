package server

// Swagger type definitions for API documentation.
// Amounts are plain JSON numbers in rupees; the handlers decode them into
// decimals, so these mirror the wire shape rather than the domain types.

// --- Request Types ---

// CapitalGainBody is one capital-gain entry of a calculate request.
type CapitalGainBody struct {
	Type   string  `json:"type" example:"ltcg" enums:"stcg,ltcg"`
	Asset  string  `json:"asset" example:"equity"`
	Amount float64 `json:"amount" example:"200000"`
	Rate   float64 `json:"rate,omitempty" example:"0.2"`
}

// CalculateRequest is the body of POST /calculate.
type CalculateRequest struct {
	GrossSalary         float64           `json:"grossSalary" example:"1200000"`
	StandardDeduction   float64           `json:"standardDeduction,omitempty" example:"50000"`
	OtherDeductions     float64           `json:"otherDeductions,omitempty" example:"0"`
	Chapter6ADeductions float64           `json:"chapter6ADeductions,omitempty" example:"150000"`
	EmployerNPS         float64           `json:"employerNPS,omitempty" example:"0"`
	InterestSavings     float64           `json:"interestSavings,omitempty" example:"12000"`
	InterestFD          float64           `json:"interestFD,omitempty" example:"0"`
	IsSenior            bool              `json:"isSenior,omitempty" example:"false"`
	CapitalGains        []CapitalGainBody `json:"capitalGains,omitempty"`
	HasVDA              bool              `json:"hasVDA,omitempty" example:"false"`
}

// CompareRegimesRequest is the body of POST /compare-regimes. Either
// grossSalary or the nested income block supplies gross income.
type CompareRegimesRequest struct {
	GrossSalary float64            `json:"grossSalary,omitempty" example:"800000"`
	Income      map[string]float64 `json:"income,omitempty"`
	Deductions  map[string]float64 `json:"deductions,omitempty"`
}

// Form16Body is the body of POST /from-form16.
type Form16Body struct {
	ExtractedData struct {
		Income struct {
			Salary            float64 `json:"salary" example:"1000000"`
			StandardDeduction float64 `json:"standardDeduction" example:"50000"`
		} `json:"income"`
		Deductions struct {
			Total float64 `json:"total" example:"150000"`
		} `json:"deductions"`
	} `json:"extractedData"`
}

// SuggestionsBody is the body of POST /suggestions.
type SuggestionsBody struct {
	GrossSalary       float64 `json:"grossSalary" example:"1000000"`
	CurrentDeductions struct {
		Section80C float64 `json:"section80c" example:"50000"`
		Section80D float64 `json:"section80d" example:"0"`
		NPS        float64 `json:"nps" example:"0"`
	} `json:"currentDeductions"`
}

// --- Response Types ---

// ValidationErrorBody is returned with 400 when a request fails validation.
type ValidationErrorBody struct {
	Success bool     `json:"success" example:"false"`
	Errors  []string `json:"errors" example:"Gross salary must be a non-negative number"`
}

// ErrorResponseBody is returned for every other error.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Message string   `json:"message" example:"Extracted data is required"`
	Error   APIError `json:"error"`
}
