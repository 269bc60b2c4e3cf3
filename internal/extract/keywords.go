package extract

// reservedKeywords is the fixed filter applied to both table and field
// candidates. A captured token that normalizes to one of these is discarded.
var reservedKeywords = map[string]bool{
	// Statement and clause keywords.
	"select": true, "from": true, "where": true, "join": true,
	"inner": true, "left": true, "right": true, "outer": true,
	"union": true, "order": true, "by": true, "group": true,
	"having": true, "limit": true, "offset": true,
	"insert": true, "into": true, "values": true, "update": true,
	"set": true, "delete": true, "create": true, "table": true,
	"index": true, "view": true, "drop": true, "alter": true,
	"add": true, "column": true,

	// Constraint keywords.
	"primary": true, "key": true, "foreign": true, "references": true,
	"constraint": true, "unique": true, "not": true, "null": true,
	"default": true, "auto_increment": true,

	// Common type names.
	"varchar": true, "int": true, "integer": true, "decimal": true,
	"float": true, "double": true, "text": true, "date": true,
	"datetime": true, "timestamp": true, "boolean": true,

	// Literals.
	"true": true, "false": true,

	// Logical and comparison keywords.
	"and": true, "or": true, "in": true, "like": true,
	"between": true, "exists": true,

	// Control keywords.
	"case": true, "when": true, "then": true, "else": true,
	"end": true, "as": true, "distinct": true,

	// Aggregates and ordering.
	"count": true, "sum": true, "avg": true, "max": true,
	"min": true, "asc": true, "desc": true,
}

// isKeyword reports whether the already-lowercased word is reserved.
func isKeyword(word string) bool {
	return reservedKeywords[word]
}
