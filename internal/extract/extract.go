// Package extract recovers table and field identifiers from SQL text
// without a full SQL grammar. An identifier's role is inferred purely from
// the clause keyword that precedes it (FROM/JOIN/UPDATE/INSERT INTO/DELETE
// FROM for tables; the SELECT list, WHERE, ORDER BY, GROUP BY, INSERT
// column lists and UPDATE SET for fields). That trades semantic precision
// for robustness across dialects: the same rules work on MySQL-, Postgres-
// and SQL-Server-flavored text, well-formed or not.
//
// Known approximation: the WHERE and SET rules only capture identifiers on
// the left-hand side of an operator, so the right-hand column in
// "WHERE a = b" is not recorded. Downstream counts depend on this, keep it.
package extract

import (
	"regexp"
	"strings"

	"sqlxref/internal/sqlscan"
)

// quotedIdent matches a possibly schema-qualified, possibly quoted
// identifier (backticks, double quotes, square brackets).
var quotedIdent = `[\w.$"` + "`" + `\[\]]+`

// bareIdent matches an unquoted identifier with at most one qualifier,
// as the WHERE and SET rules see them.
const bareIdent = `[\w$]+(?:\.[\w$]+)?`

// Parse runs the splitter and both rule sets over text and returns a fresh
// Result. It is a pure function: identical text always yields an identical
// Result, and no state survives between calls. It never fails; text the
// tokenizer cannot make sense of degrades to UNKNOWN statements with
// best-effort extraction.
func Parse(text string) *Result {
	return ParseWithOptions(text, sqlscan.Options{})
}

// ParseWithOptions is Parse with explicit splitter options.
func ParseWithOptions(text string, opts sqlscan.Options) *Result {
	res := NewResult()
	splitter := sqlscan.NewSplitterWithOptions(opts)
	for _, stmt := range splitter.Split(text) {
		res.Statements = append(res.Statements, stmt.Text)
		res.StatementTypes[stmt.Type]++
		extractTables(stmt.Text, res)
		extractFields(stmt.Text, res)
	}
	return res
}

// tableRules maps each table-position clause to the pattern capturing the
// identifier that follows it. Rules are independent: a statement matching
// several rules (or one rule several times) contributes one occurrence per
// match, so "DELETE FROM t" counts t under both FROM and DELETE FROM.
// New clause types are new entries here, not edits to existing ones.
var tableRules = []struct {
	clause string
	re     *regexp.Regexp
}{
	{"from", regexp.MustCompile(`(?i)\bFROM\s+(` + quotedIdent + `)`)},
	{"join", regexp.MustCompile(`(?i)\bJOIN\s+(` + quotedIdent + `)`)},
	{"update", regexp.MustCompile(`(?i)\bUPDATE\s+(` + quotedIdent + `)`)},
	{"insert into", regexp.MustCompile(`(?i)\bINSERT\s+INTO\s+(` + quotedIdent + `)`)},
	{"delete from", regexp.MustCompile(`(?i)\bDELETE\s+FROM\s+(` + quotedIdent + `)`)},
}

func extractTables(stmt string, res *Result) {
	for _, rule := range tableRules {
		for _, m := range rule.re.FindAllStringSubmatch(stmt, -1) {
			if name, ok := normalizeIdent(m[1]); ok {
				res.TableOccurrences[name]++
			}
		}
	}
}

// fieldRules maps each field-position clause to its capture strategy. Each
// capture emits raw candidate tokens; normalization and the keyword filter
// are applied uniformly afterwards.
var fieldRules = []struct {
	clause  string
	capture func(stmt string, emit func(raw string))
}{
	{"select list", captureSelectList},
	{"where", captureWhere},
	{"order by", captureOrderBy},
	{"group by", captureGroupBy},
	{"insert columns", captureInsertColumns},
	{"update set", captureUpdateSet},
}

func extractFields(stmt string, res *Result) {
	emit := func(raw string) {
		if name, ok := normalizeIdent(raw); ok {
			res.FieldOccurrences[name]++
		}
	}
	for _, rule := range fieldRules {
		rule.capture(stmt, emit)
	}
}

var (
	selectListRe = regexp.MustCompile(`(?is)\bSELECT\s+(.*?)\s+FROM\b`)
	aliasRe      = regexp.MustCompile(`(?i)\s+AS\s+[\w$"` + "`" + `\[\]]+`)
	aggregateRe  = regexp.MustCompile(`(?i)\b(?:COUNT|SUM|AVG|MAX|MIN|DISTINCT)\s*\(\s*(.*?)\s*\)`)
	parenRe      = strings.NewReplacer("(", "", ")", "")

	whereStartRe = regexp.MustCompile(`(?i)\bWHERE\b`)
	whereStopRe  = regexp.MustCompile(`(?i)\b(?:GROUP|ORDER|HAVING|LIMIT)\b`)
	whereFieldRe = regexp.MustCompile(`(?i)(` + bareIdent + `)\s*(?:!=|<>|=|<|>|\bLIKE\b|\bIN\b|\bBETWEEN\b)`)

	orderStartRe = regexp.MustCompile(`(?i)\bORDER\s+BY\b`)
	orderStopRe  = regexp.MustCompile(`(?i)\bLIMIT\b`)
	orderDirRe   = regexp.MustCompile(`(?i)\s+(?:ASC|DESC)\s*$`)

	groupStartRe = regexp.MustCompile(`(?i)\bGROUP\s+BY\b`)
	groupStopRe  = regexp.MustCompile(`(?i)\b(?:HAVING|ORDER|LIMIT)\b`)

	insertColsRe = regexp.MustCompile(`(?is)\bINSERT\s+INTO\s+` + quotedIdent + `\s*\(([^)]*)\)`)

	setStartRe = regexp.MustCompile(`(?i)\bSET\b`)
	setStopRe  = regexp.MustCompile(`(?i)\bWHERE\b`)
	setFieldRe = regexp.MustCompile(`([\w$]+)\s*=`)
)

// captureSelectList takes the text between SELECT and the following FROM,
// splits it on top-level commas, and strips aliases and aggregate wrappers
// down to the inner expression. A bare * is never a field.
func captureSelectList(stmt string, emit func(string)) {
	for _, m := range selectListRe.FindAllStringSubmatch(stmt, -1) {
		for _, item := range splitTopLevel(m[1]) {
			item = aliasRe.ReplaceAllString(item, "")
			item = cleanExpr(item)
			if item == "" || item == "*" {
				continue
			}
			emit(item)
		}
	}
}

// captureWhere records every bare identifier immediately followed by a
// comparison operator inside the WHERE clause body.
func captureWhere(stmt string, emit func(string)) {
	body, ok := clauseBody(stmt, whereStartRe, whereStopRe)
	if !ok {
		return
	}
	for _, m := range whereFieldRe.FindAllStringSubmatch(body, -1) {
		emit(m[1])
	}
}

func captureOrderBy(stmt string, emit func(string)) {
	body, ok := clauseBody(stmt, orderStartRe, orderStopRe)
	if !ok {
		return
	}
	for _, item := range splitTopLevel(body) {
		item = orderDirRe.ReplaceAllString(strings.TrimSpace(item), "")
		if item = cleanExpr(item); item != "" {
			emit(item)
		}
	}
}

func captureGroupBy(stmt string, emit func(string)) {
	body, ok := clauseBody(stmt, groupStartRe, groupStopRe)
	if !ok {
		return
	}
	for _, item := range splitTopLevel(body) {
		if item = cleanExpr(item); item != "" {
			emit(item)
		}
	}
}

// captureInsertColumns records each name in the parenthesized column list
// of an INSERT INTO t (...) form.
func captureInsertColumns(stmt string, emit func(string)) {
	for _, m := range insertColsRe.FindAllStringSubmatch(stmt, -1) {
		for _, item := range splitTopLevel(m[1]) {
			if item = strings.TrimSpace(item); item != "" {
				emit(item)
			}
		}
	}
}

// captureUpdateSet records every identifier immediately followed by = in
// the SET clause body, up to WHERE or the end of the statement.
func captureUpdateSet(stmt string, emit func(string)) {
	body, ok := clauseBody(stmt, setStartRe, setStopRe)
	if !ok {
		return
	}
	for _, m := range setFieldRe.FindAllStringSubmatch(body, -1) {
		emit(m[1])
	}
}

// clauseBody returns the statement text after the first start match,
// truncated at the first stop match if any. ok is false when the clause is
// absent, which is not an error: the rule simply contributes nothing.
func clauseBody(stmt string, start, stop *regexp.Regexp) (body string, ok bool) {
	loc := start.FindStringIndex(stmt)
	if loc == nil {
		return "", false
	}
	body = stmt[loc[1]:]
	if sl := stop.FindStringIndex(body); sl != nil {
		body = body[:sl[0]]
	}
	return body, true
}

// cleanExpr strips aggregate-function wrappers down to their inner
// expression, drops leftover parentheses and trims whitespace.
func cleanExpr(s string) string {
	s = aggregateRe.ReplaceAllString(s, "$1")
	s = parenRe.Replace(s)
	return strings.TrimSpace(s)
}

// splitTopLevel splits s on commas outside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// normalizeIdent applies the uniform normalization: drop the qualifier
// prefix, strip quote and bracket delimiters, lowercase, trim. Empty
// results, the literal *, numeric tokens and reserved keywords are
// rejected.
func normalizeIdent(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Trim(s, "`\"[]")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "*" || isKeyword(s) {
		return "", false
	}
	if !isIdentStart(s[0]) {
		return "", false
	}
	return s, true
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b == '_'
}
