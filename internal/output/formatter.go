package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// Formatter renders a computation result in one output format
type Formatter interface {
	Name() string
	Format(result *domain.ComputationResult) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(result *domain.ComputationResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.ComputationResult) ([]byte, error) {
	return f.F(result)
}

var registry = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	DetailedCSVFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// formatAliases maps alternative names onto registered formatters
var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for _, f := range registry {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted aliases in alphabetical order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GetFormatterByName returns the formatter for a name or alias, or nil
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	for _, f := range registry {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with an error for unknown names
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", domain.ErrUnknownFormat, name, strings.Join(AvailableFormatterNames(), ", "))
}

// WriteFormatted renders the result and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, result *domain.ComputationResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("tax_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// LookupFormatterWithRules resolves a formatter and hands it the active rules
// when it renders an assumptions block.
func LookupFormatterWithRules(name string, rules *domain.TaxRules) (Formatter, error) {
	f, err := LookupFormatter(name)
	if err != nil {
		return nil, err
	}
	switch f.(type) {
	case ConsoleVerboseFormatter:
		return ConsoleVerboseFormatter{Rules: rules}, nil
	case HTMLFormatter:
		return HTMLFormatter{Rules: rules}, nil
	}
	return f, nil
}

// FileExtension returns the extension used when a report is saved to disk
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "json", "html", "csv":
		return f.Name()
	case "detailed-csv":
		return "csv"
	default:
		return "txt"
	}
}
