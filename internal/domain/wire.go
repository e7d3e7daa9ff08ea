package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Requests are decoded leniently: an amount that is not a number token
// (a quoted "500000", "abc", true, an object) decodes as absent instead of
// failing the whole document. The validator then reports it alongside every
// other problem. A capitalGains value that is not a sequence is ignored.

type taxRequestFields struct {
	GrossSalary         json.RawMessage `json:"grossSalary"`
	StandardDeduction   json.RawMessage `json:"standardDeduction"`
	OtherDeductions     json.RawMessage `json:"otherDeductions"`
	Chapter6ADeductions json.RawMessage `json:"chapter6ADeductions"`
	EmployerNPS         json.RawMessage `json:"employerNPS"`
	InterestSavings     json.RawMessage `json:"interestSavings"`
	InterestFD          json.RawMessage `json:"interestFD"`
	IsSenior            json.RawMessage `json:"isSenior"`
	CapitalGains        json.RawMessage `json:"capitalGains"`
	HasVDA              json.RawMessage `json:"hasVDA"`
}

// UnmarshalJSON decodes a request body. Only a malformed document or a
// non-object body is an error.
func (r *TaxRequest) UnmarshalJSON(data []byte) error {
	var f taxRequestFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*r = TaxRequest{
		GrossSalary:         jsonAmount(f.GrossSalary),
		StandardDeduction:   jsonAmount(f.StandardDeduction),
		OtherDeductions:     jsonAmount(f.OtherDeductions),
		Chapter6ADeductions: jsonAmount(f.Chapter6ADeductions),
		EmployerNPS:         jsonAmount(f.EmployerNPS),
		InterestSavings:     jsonAmount(f.InterestSavings),
		InterestFD:          jsonAmount(f.InterestFD),
		IsSenior:            jsonFlag(f.IsSenior),
		HasVDA:              jsonFlag(f.HasVDA),
	}

	if gains := bytes.TrimSpace(f.CapitalGains); len(gains) > 0 && gains[0] == '[' {
		if err := json.Unmarshal(gains, &r.CapitalGains); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON decodes one capital-gain entry. A non-object entry decodes
// to the zero value so both of its problems are reported.
func (cg *CapitalGainRequest) UnmarshalJSON(data []byte) error {
	*cg = CapitalGainRequest{}

	var f struct {
		Type   json.RawMessage `json:"type"`
		Asset  json.RawMessage `json:"asset"`
		Amount json.RawMessage `json:"amount"`
		Rate   json.RawMessage `json:"rate"`
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	cg.Type = jsonString(f.Type)
	cg.Asset = jsonString(f.Asset)
	cg.Amount = jsonAmount(f.Amount)
	cg.Rate = jsonAmount(f.Rate)
	return nil
}

// jsonAmount returns the value of a JSON number token, or nil for anything else
func jsonAmount(raw json.RawMessage) *decimal.Decimal {
	tok := bytes.TrimSpace(raw)
	if len(tok) == 0 || (tok[0] != '-' && (tok[0] < '0' || tok[0] > '9')) {
		return nil
	}
	d, err := decimal.NewFromString(string(tok))
	if err != nil {
		return nil
	}
	return &d
}

func jsonFlag(raw json.RawMessage) bool {
	var b bool
	return len(raw) > 0 && json.Unmarshal(raw, &b) == nil && b
}

func jsonString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// UnmarshalYAML decodes a request file or scenario entry with the same
// leniency as the JSON body.
func (r *TaxRequest) UnmarshalYAML(node *yaml.Node) error {
	fields, err := yamlFields(node)
	if err != nil {
		return err
	}

	*r = TaxRequest{
		GrossSalary:         yamlAmount(fields["grossSalary"]),
		StandardDeduction:   yamlAmount(fields["standardDeduction"]),
		OtherDeductions:     yamlAmount(fields["otherDeductions"]),
		Chapter6ADeductions: yamlAmount(fields["chapter6ADeductions"]),
		EmployerNPS:         yamlAmount(fields["employerNPS"]),
		InterestSavings:     yamlAmount(fields["interestSavings"]),
		InterestFD:          yamlAmount(fields["interestFD"]),
		IsSenior:            yamlFlag(fields["isSenior"]),
		HasVDA:              yamlFlag(fields["hasVDA"]),
	}

	if gains := fields["capitalGains"]; gains != nil && gains.Kind == yaml.SequenceNode {
		r.CapitalGains = make([]CapitalGainRequest, len(gains.Content))
		for i, item := range gains.Content {
			if err := item.Decode(&r.CapitalGains[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalYAML decodes one capital-gain entry
func (cg *CapitalGainRequest) UnmarshalYAML(node *yaml.Node) error {
	*cg = CapitalGainRequest{}

	fields, err := yamlFields(node)
	if err != nil {
		return nil
	}
	cg.Type = yamlString(fields["type"])
	cg.Asset = yamlString(fields["asset"])
	cg.Amount = yamlAmount(fields["amount"])
	cg.Rate = yamlAmount(fields["rate"])
	return nil
}

func yamlFields(node *yaml.Node) (map[string]*yaml.Node, error) {
	node = yamlResolve(node)
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		fields[node.Content[i].Value] = yamlResolve(node.Content[i+1])
	}
	return fields, nil
}

func yamlResolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// yamlAmount returns the value of a plain int or float scalar. Quoted
// scalars resolve to !!str and are not amounts.
func yamlAmount(node *yaml.Node) *decimal.Decimal {
	if node == nil || node.Kind != yaml.ScalarNode {
		return nil
	}
	if tag := node.ShortTag(); tag != "!!int" && tag != "!!float" {
		return nil
	}

	if d, err := decimal.NewFromString(strings.ReplaceAll(node.Value, "_", "")); err == nil {
		return &d
	}
	var i int64
	if err := node.Decode(&i); err == nil {
		d := decimal.NewFromInt(i)
		return &d
	}
	return nil
}

func yamlFlag(node *yaml.Node) bool {
	var b bool
	return node != nil && node.ShortTag() == "!!bool" && node.Decode(&b) == nil && b
}

func yamlString(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return ""
	}
	return node.Value
}
