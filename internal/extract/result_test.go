package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsMatchOccurrenceKeys(t *testing.T) {
	res := Parse(`SELECT id, name FROM users WHERE id = 1;
		UPDATE orders SET total = 5 WHERE id = 2;
		DELETE FROM logs;`)

	require.NotEmpty(t, res.TableOccurrences)
	require.NotEmpty(t, res.FieldOccurrences)

	assert.Len(t, res.Tables(), len(res.TableOccurrences))
	for _, name := range res.Tables() {
		assert.GreaterOrEqual(t, res.TableOccurrences[name], 1)
	}
	assert.Len(t, res.Fields(), len(res.FieldOccurrences))
	for _, name := range res.Fields() {
		assert.GreaterOrEqual(t, res.FieldOccurrences[name], 1)
	}
}

func TestMergeSumsCounts(t *testing.T) {
	a := Parse("SELECT id FROM users")
	b := Parse("SELECT id, name FROM users JOIN orders ON users.id = orders.user_id")

	merged := Merge(a, b)

	assert.Equal(t, 2, merged.TableOccurrences["users"])
	assert.Equal(t, 1, merged.TableOccurrences["orders"])
	assert.Equal(t, 2, merged.FieldOccurrences["id"])
	assert.Equal(t, map[string]int{"SELECT": 2}, merged.StatementTypes)
	assert.Len(t, merged.Statements, 2)
}

func TestMergeOrderIndependent(t *testing.T) {
	a := Parse("SELECT a FROM t1")
	b := Parse("SELECT b FROM t2 WHERE b = 1")
	c := Parse("INSERT INTO t1 (a) VALUES (1)")

	forward := Merge(a, b, c)
	backward := Merge(c, b, a)
	nested := Merge(Merge(a, b), c)

	assert.Equal(t, forward.TableOccurrences, backward.TableOccurrences)
	assert.Equal(t, forward.FieldOccurrences, backward.FieldOccurrences)
	assert.Equal(t, forward.StatementTypes, backward.StatementTypes)
	assert.Equal(t, forward.TableOccurrences, nested.TableOccurrences)
	assert.Equal(t, forward.FieldOccurrences, nested.FieldOccurrences)
}

func TestMergeLeavesInputsAlone(t *testing.T) {
	a := Parse("SELECT a FROM t1")
	before := len(a.Statements)

	_ = Merge(a, Parse("SELECT b FROM t2"))

	assert.Len(t, a.Statements, before)
	assert.Equal(t, 1, a.TableOccurrences["t1"])
}

func TestMergeSkipsNil(t *testing.T) {
	a := Parse("SELECT a FROM t1")

	merged := Merge(nil, a, nil)

	assert.Equal(t, a.TableOccurrences, merged.TableOccurrences)
}

func TestMergeEmpty(t *testing.T) {
	merged := Merge()

	assert.Empty(t, merged.Statements)
	assert.Empty(t, merged.TableOccurrences)
}
