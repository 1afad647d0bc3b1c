package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idolapi/internal/models"
)

/*
TestIdol_MarshalAllKeysPresent verifies the serialization contract: every
declared column appears as a key in the row JSON, missing values as null,
never absent.
*/
func TestIdol_MarshalAllKeysPresent(t *testing.T) {
	b, err := json.Marshal(models.Idol{StageName: "Karina"})
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))

	cols := models.IdolTable.Columns()
	assert.Len(t, m, len(cols))
	for _, c := range cols {
		raw, ok := m[c]
		require.True(t, ok, "missing key %q", c)
		if c != models.IdolTable.StageName {
			assert.Equal(t, "null", string(raw), "key %q should be null", c)
		}
	}
	assert.Equal(t, `"Karina"`, string(m["Stage_Name"]))
}

func TestLookupColumn(t *testing.T) {
	for _, c := range models.IdolTable.Columns() {
		got, ok := models.LookupColumn(c)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	for _, field := range []string{"NotAColumn", "stage_name", "GROUP", "", "Stage_Name; DROP TABLE x"} {
		_, ok := models.LookupColumn(field)
		assert.False(t, ok, "field %q must be rejected", field)
	}
}

func TestNullableMeasurement(t *testing.T) {
	assert.True(t, models.NullableMeasurement(models.IdolTable.Height))
	assert.True(t, models.NullableMeasurement(models.IdolTable.Weight))
	assert.False(t, models.NullableMeasurement(models.IdolTable.Country))
	assert.False(t, models.NullableMeasurement(models.IdolTable.StageName))
}
