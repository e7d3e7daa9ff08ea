package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// JSONFormatter emits the result in its API shape, indented.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return buf.Bytes(), nil
}
