package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueScalars(t *testing.T) {
	assert.Equal(t, "a - b", Value("a – b"))
	assert.Equal(t, 42.0, Value(42.0))
	assert.Equal(t, true, Value(true))
	assert.Nil(t, Value(nil))
}

func TestValueNestedShape(t *testing.T) {
	input := map[string]interface{}{
		"summary": "Engineer — builder",
		"experience": []interface{}{
			map[string]interface{}{
				"title":   "Backend “Engineer”",
				"bullets": []interface{}{"• Built APIs", "Cut latency 30 %"},
				"years":   3.0,
			},
		},
		"deep": []interface{}{[]interface{}{[]interface{}{"’"}}},
		"flag": false,
	}

	got := Value(input)

	out, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Engineer - builder", out["summary"])
	assert.Equal(t, false, out["flag"])

	exp, ok := out["experience"].([]interface{})
	require.True(t, ok)
	require.Len(t, exp, 1)

	entry, ok := exp[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, `Backend "Engineer"`, entry["title"])
	assert.Equal(t, []interface{}{"* Built APIs", "Cut latency 30 %"}, entry["bullets"])
	assert.Equal(t, 3.0, entry["years"])

	assert.Equal(t, []interface{}{[]interface{}{[]interface{}{"'"}}}, out["deep"])
}

func TestValueDoesNotMutateInput(t *testing.T) {
	bullets := []interface{}{"– one"}
	input := map[string]interface{}{"bullets": bullets, "name": "Renée"}

	_ = Value(input)

	assert.Equal(t, "Renée", input["name"])
	assert.Equal(t, "– one", bullets[0])
}

func TestValueTypedContainers(t *testing.T) {
	assert.Equal(t, []string{"-"}, Value([]string{"—"}))
	assert.Equal(t, map[string]string{"k": "'"}, Value(map[string]string{"k": "’"}))
}

func TestValueDeepNesting(t *testing.T) {
	var v interface{} = "–"
	for i := 0; i < 5000; i++ {
		v = []interface{}{v}
	}

	got := Value(v)
	for i := 0; i < 5000; i++ {
		list, ok := got.([]interface{})
		require.True(t, ok)
		got = list[0]
	}
	assert.Equal(t, "-", got)
}
