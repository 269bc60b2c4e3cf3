package report

import (
	"encoding/json"
	"fmt"

	"sqlxref/internal/extract"
	"sqlxref/internal/match"
)

type jsonFormatter struct{}

type jsonAnalysis struct {
	StatementCount   int            `json:"statement_count"`
	StatementTypes   map[string]int `json:"statement_types"`
	Tables           []string       `json:"tables"`
	Fields           []string       `json:"fields"`
	TableOccurrences map[string]int `json:"table_occurrences"`
	FieldOccurrences map[string]int `json:"field_occurrences"`
}

type jsonComparison struct {
	Rows    []match.Row   `json:"comparison"`
	Stats   match.Stats   `json:"coverage"`
	SQLOnly match.SQLOnly `json:"sql_only"`
}

func (jsonFormatter) FormatAnalysis(res *extract.Result) (string, error) {
	if res == nil {
		return "", nil
	}
	doc := jsonAnalysis{
		StatementCount:   len(res.Statements),
		StatementTypes:   res.StatementTypes,
		Tables:           res.Tables(),
		Fields:           res.Fields(),
		TableOccurrences: res.TableOccurrences,
		FieldOccurrences: res.FieldOccurrences,
	}
	return marshal(doc)
}

func (jsonFormatter) FormatComparison(c *Comparison) (string, error) {
	if c == nil {
		return "", nil
	}
	return marshal(jsonComparison{Rows: c.Rows, Stats: c.Stats, SQLOnly: c.SQLOnly})
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}
