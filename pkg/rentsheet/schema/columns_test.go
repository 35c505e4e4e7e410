package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
)

func allHeaders() []string {
	var out []string
	for _, c := range Columns() {
		out = append(out, c.Header())
	}
	return out
}

func TestNewIndexOrderIndependent(t *testing.T) {
	header := allHeaders()
	// reverse and add an unrelated column in front
	for i, j := 0, len(header)-1; i < j; i, j = i+1, j-1 {
		header[i], header[j] = header[j], header[i]
	}
	header = append([]string{"Commentaire interne"}, header...)

	ix, err := NewIndex(header)
	require.NoError(t, err)

	for _, c := range Columns() {
		assert.Equal(t, c.Header(), header[ix.Position(c)], "column %v", c)
	}
}

func TestNewIndexMissingColumns(t *testing.T) {
	header := allHeaders()
	var kept []string
	for _, h := range header {
		if h == "Tel" || h == "État" {
			continue
		}
		kept = append(kept, h)
	}

	_, err := NewIndex(kept)
	require.Error(t, err)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"État", "Tel"}, missing.Missing)
	assert.Contains(t, err.Error(), "État")
}

func TestNewIndexEmptyHeader(t *testing.T) {
	_, err := NewIndex(nil)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Missing, len(Columns()))
}

func TestNewIndexNormalizesHeaders(t *testing.T) {
	header := allHeaders()
	for i, h := range header {
		switch h {
		case "État":
			header[i] = "E\u0301tat" // decomposed accent
		case "Quartier":
			header[i] = "  Quartier "
		}
	}

	ix, err := NewIndex(header)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Position(Quartier))
}

func TestNewIndexLastDuplicateWins(t *testing.T) {
	header := append(allHeaders(), "Notes")

	ix, err := NewIndex(header)
	require.NoError(t, err)
	assert.Equal(t, len(header)-1, ix.Position(Notes))
}

func TestIndexCell(t *testing.T) {
	ix, err := NewIndex(allHeaders())
	require.NoError(t, err)

	row := models.CellRow{R: 2, Cells: []models.Cell{models.NewStringCell("Antigone")}}
	assert.Equal(t, "Antigone", ix.Cell(row, Quartier).String())
	assert.True(t, ix.Cell(row, Notes).IsNull())
}
