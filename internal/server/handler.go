package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/transform"
)

// TaxHandler serves the /api/enhanced-tax routes.
type TaxHandler struct {
	engine      *calculation.TaxEngine
	parser      *config.InputParser
	suggestions *calculation.SuggestionCalculator
}

// NewTaxHandler creates a handler sharing one engine across requests.
func NewTaxHandler(engine *calculation.TaxEngine) *TaxHandler {
	return &TaxHandler{
		engine:      engine,
		parser:      config.NewInputParserWithRules(engine.Rules),
		suggestions: calculation.NewSuggestionCalculator(engine.Rules.Suggestions),
	}
}

func bindError(c *gin.Context, err error) {
	RespondValidation(c, []string{"Invalid request body: " + err.Error()})
}

// Calculate handles POST /api/enhanced-tax/calculate
// @Summary Calculate tax under both regimes
// @Description Validate the request, compute old and new regime tax and recommend one
// @Tags tax
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Income, deductions and capital gains"
// @Success 200 {object} APIResponse{data=domain.ComputationResult} "Full computation"
// @Failure 400 {object} ValidationErrorBody "Every validation problem found"
// @Failure 429 {object} ErrorResponseBody "Rate limited"
// @Router /calculate [post]
func (h *TaxHandler) Calculate(c *gin.Context) {
	var req domain.TaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.parser.ValidateRequest(&req); err != nil {
		RespondDomainError(c, err)
		return
	}

	result := h.engine.Compute(h.parser.Normalize(&req))
	RespondOK(c, result)
}

// CompareRegimes handles POST /api/enhanced-tax/compare-regimes
// @Summary Quick regime comparison
// @Description Accept a flat salary or nested income/deduction blocks and summarise both regimes
// @Tags tax
// @Accept json
// @Produce json
// @Param request body CompareRegimesRequest true "Flat or nested payload"
// @Success 200 {object} APIResponse{data=domain.RegimeSummary} "Regime summary"
// @Failure 400 {object} ValidationErrorBody "Malformed body"
// @Router /compare-regimes [post]
func (h *TaxHandler) CompareRegimes(c *gin.Context) {
	var req domain.RegimeComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	taxReq := transform.FromRegimeComparison(req, h.engine.Rules)
	result := h.engine.Compute(h.parser.Normalize(&taxReq))
	RespondOK(c, transform.SummarizeRegimes(result))
}

// FromForm16 handles POST /api/enhanced-tax/from-form16
// @Summary Calculate tax from Form-16 data
// @Tags tax
// @Accept json
// @Produce json
// @Param request body Form16Body true "Extracted Form-16 fields"
// @Success 200 {object} APIResponse{data=domain.ComputationResult} "Full computation"
// @Failure 400 {object} ErrorResponseBody "Extracted data missing"
// @Router /from-form16 [post]
func (h *TaxHandler) FromForm16(c *gin.Context) {
	var req domain.Form16Request
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	taxReq, err := transform.FromForm16(req, h.engine.Rules)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result := h.engine.Compute(h.parser.Normalize(&taxReq))
	RespondOKMessage(c, result, "Tax calculated from Form-16 data")
}

// Suggestions handles POST /api/enhanced-tax/suggestions
// @Summary Suggest unused deductions
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body SuggestionsBody true "Salary and deductions already claimed"
// @Success 200 {object} APIResponse{data=domain.SuggestionReport} "Suggestions"
// @Failure 400 {object} ValidationErrorBody "Malformed body"
// @Router /suggestions [post]
func (h *TaxHandler) Suggestions(c *gin.Context) {
	var req domain.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	RespondOK(c, h.suggestions.Suggest(req))
}

// Liveness handles GET /healthz
func (h *TaxHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"financialYear":  h.engine.Rules.Metadata.FinancialYear,
		"assessmentYear": h.engine.Rules.Metadata.AssessmentYear,
	})
}
