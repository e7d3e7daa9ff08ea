package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxease/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const salaryRequest = `grossSalary: 800000
chapter6ADeductions: 150000
`

const scenariosFile = `base: current
scenarios:
  - name: current
    request:
      grossSalary: 1200000
  - name: max-80c
    description: Claim the full 80C limit
    request:
      grossSalary: 1200000
      chapter6ADeductions: 150000
`

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "taxease", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"calculate", "validate", "compare", "breakeven", "suggest", "serve", "rules", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "old and new regimes")
}

func TestCalculateCommand(t *testing.T) {
	path := writeFile(t, "request.yaml", salaryRequest)

	t.Run("summary", func(t *testing.T) {
		out, err := execute(t, "calculate", path, "-f", "console-lite")
		require.NoError(t, err)
		assert.Contains(t, out, "Recommended: OLD regime (saves ₹22,400, 255%)")
	})

	t.Run("verbose default", func(t *testing.T) {
		out, err := execute(t, "calculate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "INCOME TAX COMPUTATION FY2024-25")
		assert.Contains(t, out, "Final Tax Payable: ₹8,800")
	})

	t.Run("csv", func(t *testing.T) {
		out, err := execute(t, "calculate", path, "--format", "csv")
		require.NoError(t, err)
		assert.Contains(t, out, "old,200000,600000,32500,0,1300,25000,8800,true")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "calculate", path, "-f", "pdf")
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "calculate", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestValidateCommand(t *testing.T) {
	valid := writeFile(t, "valid.yaml", salaryRequest)
	out, err := execute(t, "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	invalid := writeFile(t, "invalid.yaml", "grossSalary: -5\n")
	_, err = execute(t, "validate", invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Gross salary must be a non-negative number")
}

func TestCompareCommand(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenariosFile)

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "compare", path)
		require.NoError(t, err)
		assert.Contains(t, out, "TAX SCENARIO COMPARISON")
		assert.Contains(t, out, "max-80c")
	})

	t.Run("csv with template", func(t *testing.T) {
		out, err := execute(t, "compare", path, "-f", "csv", "--templates", "max_80c")
		require.NoError(t, err)
		assert.Contains(t, out, "current,base,1200000,1150000,1150000,163800,85800,new,85800,7.15,ITR-1,0,0.00,false")
		assert.Contains(t, out, "current_max_80c,alternative")
	})

	t.Run("xlsx workbook", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "out.xlsx")
		out, err := execute(t, "compare", path, "-f", "xlsx", "-o", target)
		require.NoError(t, err)
		assert.Contains(t, out, "Comparison written to "+target)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := execute(t, "compare", path, "--templates", "nope")
		assert.Error(t, err)
	})

	t.Run("list templates", func(t *testing.T) {
		out, err := execute(t, "compare", "--list-templates")
		require.NoError(t, err)
		assert.Contains(t, out, "Available Templates:")
		assert.Contains(t, out, "max_80c")
		assert.Contains(t, out, "add_gain")
	})

	t.Run("file required", func(t *testing.T) {
		_, err := execute(t, "compare")
		assert.Error(t, err)
	})
}

func TestBreakevenCommand(t *testing.T) {
	request := writeFile(t, "request.yaml", salaryRequest)
	scenarios := writeFile(t, "scenarios.yaml", scenariosFile)

	t.Run("single request", func(t *testing.T) {
		out, err := execute(t, "breakeven", request)
		require.NoError(t, err)
		assert.Contains(t, out, "REGIME BREAK-EVEN ANALYSIS")
		assert.Contains(t, out, "Break-even Deductions: ₹50,000")
		assert.Contains(t, out, "Headroom:              ₹1,00,000")
	})

	t.Run("scenarios", func(t *testing.T) {
		out, err := execute(t, "breakeven", scenarios, "--scenarios")
		require.NoError(t, err)
		assert.Contains(t, out, "REGIME BREAK-EVEN SUMMARY")
		assert.Contains(t, out, "max-80c")
		assert.Contains(t, out, "₹3,00,000")
	})

	t.Run("json with max", func(t *testing.T) {
		out, err := execute(t, "breakeven", request, "--max", "10000", "-f", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"reachable": false`)
	})

	t.Run("bad max", func(t *testing.T) {
		_, err := execute(t, "breakeven", request, "--max", "lots")
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "breakeven", request, "-f", "xml")
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	})
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "suggest", "--salary", "1000000", "--80c", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "80CCD(1B)")
	assert.Contains(t, out, "You can potentially save ₹52,500 in taxes")

	out, err = execute(t, "suggest", "--salary", "1000000", "--80c", "150000", "--80d", "25000", "--nps", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "already maximized")

	_, err = execute(t, "suggest", "--salary", "lots")
	assert.Error(t, err)
}

func TestRulesCommand_RoundTrip(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "financial_year: FY2024-25")
	assert.Contains(t, out, "cess_rate:")

	rulesPath := writeFile(t, "rules.yaml", out)
	requestPath := writeFile(t, "request.yaml", salaryRequest)

	calc, err := execute(t, "calculate", requestPath, "--rules", rulesPath, "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, calc, "saves ₹22,400")
}

func TestRulesFlag_Invalid(t *testing.T) {
	rulesPath := writeFile(t, "rules.yaml", "cess_rate: 2\n")
	_, err := execute(t, "rules", "--rules", rulesPath)
	assert.ErrorIs(t, err, domain.ErrInvalidRules)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "taxease dev")
}
