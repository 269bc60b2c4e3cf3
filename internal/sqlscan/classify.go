package sqlscan

import "strings"

// TypeUnknown labels statements whose leading token is not a recognized
// statement keyword.
const TypeUnknown = "UNKNOWN"

// statementKeywords are the keywords a statement may legally start with.
// Anything else classifies as UNKNOWN.
var statementKeywords = map[string]bool{
	"SELECT":    true,
	"INSERT":    true,
	"UPDATE":    true,
	"DELETE":    true,
	"REPLACE":   true,
	"MERGE":     true,
	"WITH":      true,
	"CREATE":    true,
	"DROP":      true,
	"ALTER":     true,
	"TRUNCATE":  true,
	"RENAME":    true,
	"GRANT":     true,
	"REVOKE":    true,
	"BEGIN":     true,
	"START":     true,
	"COMMIT":    true,
	"ROLLBACK":  true,
	"SAVEPOINT": true,
	"SET":       true,
	"SHOW":      true,
	"USE":       true,
	"DESCRIBE":  true,
	"DESC":      true,
	"EXPLAIN":   true,
	"ANALYZE":   true,
	"CALL":      true,
	"LOCK":      true,
	"UNLOCK":    true,
}

// Classify returns the type label for a single statement: its first
// non-whitespace, non-comment word uppercased when recognized, UNKNOWN
// otherwise.
func Classify(stmt string) string {
	word := leadingWord(stmt)
	if word == "" {
		return TypeUnknown
	}
	word = strings.ToUpper(word)
	if !statementKeywords[word] {
		return TypeUnknown
	}
	return word
}

// leadingWord returns the first word of stmt, skipping whitespace and
// comments.
func leadingWord(stmt string) string {
	i := 0
	n := len(stmt)
	for i < n {
		switch {
		case stmt[i] == ' ' || stmt[i] == '\t' || stmt[i] == '\n' || stmt[i] == '\r':
			i++
		case stmt[i] == '-' && i+1 < n && stmt[i+1] == '-':
			for i < n && stmt[i] != '\n' {
				i++
			}
		case stmt[i] == '/' && i+1 < n && stmt[i+1] == '*':
			i += 2
			for i < n {
				if stmt[i] == '*' && i+1 < n && stmt[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
		default:
			start := i
			for i < n && isWordByte(stmt[i]) {
				i++
			}
			return stmt[start:i]
		}
	}
	return ""
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
