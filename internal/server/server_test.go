package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxease/internal/calculation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Error   *APIError       `json:"error"`
}

func setupRouter() *gin.Engine {
	return Setup(NewTaxHandler(calculation.NewTaxEngine()), log.New(io.Discard, "", 0))
}

func post(t *testing.T, r http.Handler, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestCalculate_Success(t *testing.T) {
	w, env := post(t, setupRouter(), "/api/enhanced-tax/calculate",
		`{"grossSalary": 800000, "chapter6ADeductions": 150000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		Taxable struct {
			TaxableOld int64 `json:"taxableOld"`
			TaxableNew int64 `json:"taxableNew"`
		} `json:"taxable"`
		OldRegime struct {
			FinalTaxPayable int64 `json:"finalTaxPayable"`
		} `json:"oldRegime"`
		NewRegime struct {
			FinalTaxPayable int64 `json:"finalTaxPayable"`
		} `json:"newRegime"`
		Comparison struct {
			Recommended string `json:"recommended"`
			Savings     int64  `json:"savings"`
		} `json:"comparison"`
		ITRForm string `json:"itrForm"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(600000), data.Taxable.TaxableOld)
	assert.Equal(t, int64(750000), data.Taxable.TaxableNew)
	assert.Equal(t, int64(8800), data.OldRegime.FinalTaxPayable)
	assert.Equal(t, int64(31200), data.NewRegime.FinalTaxPayable)
	assert.Equal(t, "old", data.Comparison.Recommended)
	assert.Equal(t, int64(22400), data.Comparison.Savings)
	assert.Equal(t, "ITR-1", data.ITRForm)
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "missing salary",
			body:     `{}`,
			expected: []string{"Gross salary must be a non-negative number"},
		},
		{
			name: "chapter VI-A over cap and bad gain",
			body: `{"grossSalary": 500000, "chapter6ADeductions": 200000, "capitalGains": [{"type": "xyz", "amount": 100}]}`,
			expected: []string{
				"Chapter VI-A deductions cannot exceed ₹1,50,000",
				"Capital gain 1: type must be 'stcg' or 'ltcg'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, setupRouter(), "/api/enhanced-tax/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.expected, env.Errors)
		})
	}
}

func TestCalculate_MalformedBody(t *testing.T) {
	w, env := post(t, setupRouter(), "/api/enhanced-tax/calculate", `{"grossSalary": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
	assert.True(t, strings.HasPrefix(env.Errors[0], "Invalid request body"))
}

func TestCalculate_NonNumericValues(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "quoted salary",
			body:     `{"grossSalary": "500000"}`,
			expected: []string{"Gross salary must be a non-negative number"},
		},
		{
			name: "text salary with other problems",
			body: `{"grossSalary": "abc", "chapter6ADeductions": 200000, "capitalGains": [{"type": "foo", "amount": 5}]}`,
			expected: []string{
				"Gross salary must be a non-negative number",
				"Chapter VI-A deductions cannot exceed ₹1,50,000",
				"Capital gain 1: type must be 'stcg' or 'ltcg'",
			},
		},
		{
			name: "text gain amount",
			body: `{"grossSalary": 500000, "capitalGains": [{"type": "foo", "amount": "x"}]}`,
			expected: []string{
				"Capital gain 1: type must be 'stcg' or 'ltcg'",
				"Capital gain 1: amount must be non-negative",
			},
		},
		{
			name:     "bool salary",
			body:     `{"grossSalary": true}`,
			expected: []string{"Gross salary must be a non-negative number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, setupRouter(), "/api/enhanced-tax/calculate", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.expected, env.Errors)
		})
	}
}

func TestCalculate_CapitalGainsNotArrayIgnored(t *testing.T) {
	w, env := post(t, setupRouter(), "/api/enhanced-tax/calculate",
		`{"grossSalary": 500000, "capitalGains": {"a": 1}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		Inputs struct {
			CapitalGains []json.RawMessage `json:"capitalGains"`
		} `json:"inputs"`
		CapitalGains struct {
			TotalTax int64 `json:"totalTax"`
		} `json:"capitalGains"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Inputs.CapitalGains)
	assert.Zero(t, data.CapitalGains.TotalTax)
}

func TestCompareRegimes(t *testing.T) {
	w, env := post(t, setupRouter(), "/api/enhanced-tax/compare-regimes",
		`{"grossSalary": 800000, "deductions": {"section80c": 150000}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		FinalTax struct {
			Old int64 `json:"old"`
			New int64 `json:"new"`
		} `json:"finalTax"`
		Recommended   string `json:"recommended"`
		Savings       int64  `json:"savings"`
		RebateApplied struct {
			QualifiesOld bool `json:"qualifiesOld"`
			QualifiesNew bool `json:"qualifiesNew"`
		} `json:"rebateApplied"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(8800), data.FinalTax.Old)
	assert.Equal(t, int64(31200), data.FinalTax.New)
	assert.Equal(t, "old", data.Recommended)
	assert.Equal(t, int64(22400), data.Savings)
	assert.True(t, data.RebateApplied.QualifiesOld)
	assert.False(t, data.RebateApplied.QualifiesNew)
}

func TestFromForm16(t *testing.T) {
	t.Run("computes from extracted data", func(t *testing.T) {
		w, env := post(t, setupRouter(), "/api/enhanced-tax/from-form16",
			`{"extractedData": {"income": {"salary": 800000}, "deductions": {"total": 150000}}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Tax calculated from Form-16 data", env.Message)

		var data struct {
			OldRegime struct {
				FinalTaxPayable int64 `json:"finalTaxPayable"`
			} `json:"oldRegime"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(8800), data.OldRegime.FinalTaxPayable)
	})

	t.Run("missing extracted data", func(t *testing.T) {
		w, env := post(t, setupRouter(), "/api/enhanced-tax/from-form16", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Extracted data is required", env.Message)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MISSING_EXTRACTED_DATA", env.Error.Code)
	})
}

func TestSuggestions(t *testing.T) {
	w, env := post(t, setupRouter(), "/api/enhanced-tax/suggestions",
		`{"grossSalary": 1000000, "currentDeductions": {"section80c": 50000}}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Suggestions []struct {
			Section string `json:"section"`
		} `json:"suggestions"`
		TotalPotentialSaving int64  `json:"totalPotentialSaving"`
		Message              string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Suggestions, 3)
	assert.Equal(t, int64(52500), data.TotalPotentialSaving)
	assert.Equal(t, "You can potentially save ₹52,500 in taxes", data.Message)
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "FY2024-25")
}

func TestSwagger(t *testing.T) {
	r := setupRouter()

	t.Run("ui", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("document", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var doc struct {
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
		assert.Equal(t, "/api/enhanced-tax", doc.BasePath)
		for _, path := range []string{"/calculate", "/compare-regimes", "/from-form16", "/suggestions"} {
			assert.Contains(t, doc.Paths, path)
		}
	})
}

func TestRequestID(t *testing.T) {
	r := setupRouter()

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := Setup(NewTaxHandler(calculation.NewTaxEngine()), log.New(&buf, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "[req-1] GET /healthz 200")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Empty(t, cfg.Rules.File)
		assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
		assert.Equal(t, 30, cfg.RateLimit.Burst)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("TAXEASE_SERVER_ENVIRONMENT=staging\nTAXEASE_SERVER_PORT=6060\n"), 0644))
		t.Chdir(dir)
		t.Setenv("TAXEASE_SERVER_PORT", "7070")
		t.Cleanup(func() { os.Unsetenv("TAXEASE_SERVER_ENVIRONMENT") })

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Server.Environment)
		assert.Equal(t, ":7070", cfg.Server.Port)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TAXEASE_SERVER_PORT", "9090")
		t.Setenv("TAXEASE_SERVER_READ_TIMEOUT", "3s")
		t.Setenv("TAXEASE_SERVER_ENVIRONMENT", "production")
		t.Setenv("TAXEASE_RULES_FILE", "/etc/taxease/rules.yaml")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Port)
		assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
		assert.True(t, cfg.Server.IsProduction())
		assert.Equal(t, "/etc/taxease/rules.yaml", cfg.Rules.File)
	})
}

func TestRateLimit(t *testing.T) {
	assert.Nil(t, NewRateLimiter(RateLimitConfig{}))

	var buf bytes.Buffer
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	require.NotNil(t, limiter)
	r := Setup(NewTaxHandler(calculation.NewTaxEngine()), log.New(&buf, "", 0), RateLimit(limiter, log.New(&buf, "", 0)))

	w, _ := post(t, r, "/api/enhanced-tax/calculate", `{"grossSalary": 800000}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := post(t, r, "/api/enhanced-tax/calculate", `{"grossSalary": 800000}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RATE_LIMITED", env.Error.Code)
	assert.Contains(t, buf.String(), "rate limit exceeded: POST /api/enhanced-tax/calculate")

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestMapDomainError_Default(t *testing.T) {
	status, code, _ := MapDomainError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "127.0.0.1:0", ShutdownTimeout: time.Second}}
	srv := New(cfg, calculation.NewTaxEngine(), log.New(io.Discard, "", 0))
	require.NotNil(t, srv.Handler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
