package extract

import "sort"

// Result holds everything recovered from one run of the extractor over a
// single input text. The distinct table and field sets are the key sets of
// the occurrence maps, so set membership and counts can never drift apart.
//
// A Result is built once by Parse (or Merge) and not mutated afterwards.
type Result struct {
	// Statements is the normalized statement text in submission order.
	Statements []string
	// StatementTypes counts statements per type label (see sqlscan).
	StatementTypes map[string]int
	// TableOccurrences counts clause-level table references per name.
	TableOccurrences map[string]int
	// FieldOccurrences counts clause-level field references per name.
	FieldOccurrences map[string]int
}

// NewResult returns an empty Result with all maps allocated.
func NewResult() *Result {
	return &Result{
		StatementTypes:   map[string]int{},
		TableOccurrences: map[string]int{},
		FieldOccurrences: map[string]int{},
	}
}

// Tables returns the distinct table names, sorted.
func (r *Result) Tables() []string {
	return sortedKeys(r.TableOccurrences)
}

// Fields returns the distinct field names, sorted.
func (r *Result) Fields() []string {
	return sortedKeys(r.FieldOccurrences)
}

// HasTable reports whether name was seen as a table reference.
func (r *Result) HasTable(name string) bool {
	_, ok := r.TableOccurrences[name]
	return ok
}

// HasField reports whether name was seen as a field reference.
func (r *Result) HasField(name string) bool {
	_, ok := r.FieldOccurrences[name]
	return ok
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge combines per-file results into one: sets union, counts sum,
// statements concatenate in argument order. The reduction over sets and
// counts is commutative and associative, so callers may merge partial
// results in any grouping. Nil results are skipped. The inputs are not
// modified.
func Merge(results ...*Result) *Result {
	merged := NewResult()
	for _, r := range results {
		if r == nil {
			continue
		}
		merged.Statements = append(merged.Statements, r.Statements...)
		for k, v := range r.StatementTypes {
			merged.StatementTypes[k] += v
		}
		for k, v := range r.TableOccurrences {
			merged.TableOccurrences[k] += v
		}
		for k, v := range r.FieldOccurrences {
			merged.FieldOccurrences[k] += v
		}
	}
	return merged
}
