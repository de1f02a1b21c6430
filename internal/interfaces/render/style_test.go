package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

func TestProductStyle_ResaltaSegunUmbral(t *testing.T) {
	items := []dto.ProductResponse{{ID: 1, Quantity: 3}, {ID: 2, Quantity: 8}}

	low := productStyle(items, 5)
	assert.Equal(t, lowStyle, low(0, 4))
	assert.Equal(t, numericStyle, low(1, 4))
	assert.Equal(t, headerStyle, low(table.HeaderRow, 4))

	high := productStyle(items, 10)
	assert.Equal(t, lowStyle, high(0, 4))
	assert.Equal(t, lowStyle, high(1, 4))

	none := productStyle(items, 0)
	assert.Equal(t, numericStyle, none(0, 4))
	assert.Equal(t, cellStyle, none(0, 1))
}
