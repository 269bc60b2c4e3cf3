package sqlscan

import "strings"

// scanStatements splits sql on semicolons while respecting single-quoted
// strings, double-quoted and backtick-quoted identifiers, line comments
// (--) and block comments (/* ... */). It is the dialect-agnostic fallback
// for input the TiDB lexer rejects.
//
// Dollar-quoted strings ($$...$$) and the MySQL DELIMITER command are not
// handled.
func scanStatements(sql string) []string {
	var statements []string
	var current strings.Builder

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	i := 0
	n := len(sql)
	for i < n {
		ch := sql[i]

		switch {
		case ch == '-' && i+1 < n && sql[i+1] == '-':
			// Line comment, consumed through the newline.
			for i < n && sql[i] != '\n' {
				current.WriteByte(sql[i])
				i++
			}
			if i < n {
				current.WriteByte(sql[i])
				i++
			}

		case ch == '/' && i+1 < n && sql[i+1] == '*':
			current.WriteString("/*")
			i += 2
			for i < n {
				if sql[i] == '*' && i+1 < n && sql[i+1] == '/' {
					current.WriteString("*/")
					i += 2
					break
				}
				current.WriteByte(sql[i])
				i++
			}

		case ch == '\'':
			i = copyQuoted(&current, sql, i, '\'', true)

		case ch == '"':
			i = copyQuoted(&current, sql, i, '"', false)

		case ch == '`':
			i = copyQuoted(&current, sql, i, '`', false)

		case ch == ';':
			flush()
			i++

		default:
			current.WriteByte(ch)
			i++
		}
	}
	flush()

	return statements
}

// copyQuoted copies a quoted region starting at sql[start] (the opening
// quote) into b and returns the index past the closing quote. A doubled
// quote stays inside the region; backslash escapes are honored when
// allowEscape is set (MySQL-style strings).
func copyQuoted(b *strings.Builder, sql string, start int, quote byte, allowEscape bool) int {
	n := len(sql)
	b.WriteByte(sql[start])
	i := start + 1
	for i < n {
		switch {
		case allowEscape && sql[i] == '\\' && i+1 < n:
			b.WriteByte(sql[i])
			b.WriteByte(sql[i+1])
			i += 2
		case sql[i] == quote:
			b.WriteByte(sql[i])
			i++
			if i < n && sql[i] == quote {
				b.WriteByte(sql[i])
				i++
				continue
			}
			return i
		default:
			b.WriteByte(sql[i])
			i++
		}
	}
	return i
}

// stripComments removes line and block comments, respecting quoted regions
// so comment markers inside strings survive.
func stripComments(sql string) string {
	var out strings.Builder
	i := 0
	n := len(sql)
	for i < n {
		ch := sql[i]
		switch {
		case ch == '-' && i+1 < n && sql[i+1] == '-':
			for i < n && sql[i] != '\n' {
				i++
			}
		case ch == '/' && i+1 < n && sql[i+1] == '*':
			i += 2
			for i < n {
				if sql[i] == '*' && i+1 < n && sql[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
		case ch == '\'':
			i = copyQuoted(&out, sql, i, '\'', true)
		case ch == '"':
			i = copyQuoted(&out, sql, i, '"', false)
		case ch == '`':
			i = copyQuoted(&out, sql, i, '`', false)
		default:
			out.WriteByte(ch)
			i++
		}
	}
	return out.String()
}
