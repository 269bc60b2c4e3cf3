// Package sqlscan splits raw SQL text into discrete statements and labels
// each one by its leading keyword. Splitting is total: any input, malformed
// or not, yields a (possibly empty) list of statements and never an error.
package sqlscan

import (
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver" // required to register TiDB parser driver implementations
)

// Statement is one syntactically delimited statement with its type label.
// Type is the uppercased leading keyword, or "UNKNOWN" when the leading
// token is not a recognized statement keyword.
type Statement struct {
	Text string
	Type string
}

// Options controls statement splitting.
type Options struct {
	// StripComments removes line and block comments from statement text.
	StripComments bool
}

// Splitter splits SQL text into statements. The zero options are fine for
// most callers; see Options for knobs.
//
// A Splitter is not safe for concurrent use: the underlying TiDB parser
// keeps internal state between calls. Create one per goroutine.
type Splitter struct {
	p    *parser.Parser
	opts Options
}

// NewSplitter creates a Splitter with default options.
func NewSplitter() *Splitter {
	return NewSplitterWithOptions(Options{})
}

// NewSplitterWithOptions creates a Splitter with the given options.
func NewSplitterWithOptions(opts Options) *Splitter {
	return &Splitter{
		p:    parser.New(),
		opts: opts,
	}
}

// Split breaks sql into statements and classifies each one.
//
// The primary path runs the TiDB lexer over the input, so semicolons inside
// string literals or comments never split a statement. Input the TiDB
// grammar rejects (other dialects, malformed text) falls back to a
// dialect-agnostic scan that understands quote and comment boundaries.
// Either way every non-blank statement is returned; unrecognized statements
// are labeled "UNKNOWN" rather than dropped.
func (s *Splitter) Split(sql string) []Statement {
	var texts []string

	stmtNodes, _, err := s.p.Parse(sql, "", "")
	if err == nil {
		for _, node := range stmtNodes {
			texts = append(texts, node.OriginalText())
		}
	} else {
		texts = scanStatements(sql)
	}

	out := make([]Statement, 0, len(texts))
	for _, text := range texts {
		text = normalizeStatement(text)
		if s.opts.StripComments {
			text = strings.TrimSpace(stripComments(text))
		}
		if text == "" {
			continue
		}
		out = append(out, Statement{
			Text: text,
			Type: Classify(text),
		})
	}
	return out
}

// normalizeStatement trims surrounding whitespace and the statement
// terminator, so both split paths produce identical text for the same
// statement.
func normalizeStatement(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ";")
	return strings.TrimSpace(text)
}
