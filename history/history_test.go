package history

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axioncore/value"
)

func TestAddAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	require.NoError(t, Add(path, "1+1", value.Long, 2))
	require.NoError(t, Add(path, "1/0", value.Double, 0))

	data, err := readEntries(path)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, "1+1", data[0].Expression)
	assert.Equal(t, "LONG", data[0].DataType)
	assert.Equal(t, "1/0", data[1].Expression)
	assert.NoError(t, Show(path))
}

func TestAdd_NonFiniteResultSurvivesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	require.NoError(t, Add(path, "1/0", value.Double, math.Inf(1)))
	require.NoError(t, Add(path, "ln(-1)", value.Double, math.NaN()))
	require.NoError(t, Add(path, "1+1", value.Double, 2))

	data, err := readEntries(path)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.True(t, math.IsInf(float64(data[0].Result), 1))
	assert.True(t, math.IsNaN(float64(data[1].Result)))
}

func TestShow_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	assert.NoError(t, Show(path))
}

func readEntries(path string) ([]Entry, error) {
	var entries []Entry
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(data, &entries)
	return entries, err
}
