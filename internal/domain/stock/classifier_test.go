package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/safestock/internal/domain/stock"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		want     stock.Level
	}{
		{"cero es LOW", 0, stock.LevelLow},
		{"borde inferior LOW", 5, stock.LevelLow},
		{"primer MEDIUM", 6, stock.LevelMedium},
		{"borde superior MEDIUM", 20, stock.LevelMedium},
		{"primer IDEAL", 21, stock.LevelIdeal},
		{"muy por encima", 1000, stock.LevelIdeal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.LevelFor(tc.quantity))
		})
	}
}

func TestLevelFor_EsPura(t *testing.T) {
	// Misma cantidad, mismo resultado, siempre.
	for i := 0; i < 3; i++ {
		assert.Equal(t, stock.LevelMedium, stock.LevelFor(15))
	}
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "red", stock.ColorFor(stock.LevelLow))
	assert.Equal(t, "yellow", stock.ColorFor(stock.LevelMedium))
	assert.Equal(t, "green", stock.ColorFor(stock.LevelIdeal))
	// Función total: un nivel desconocido también resuelve.
	assert.Equal(t, "green", stock.ColorFor(stock.Level("desconocido")))
}

func TestPriorityFor(t *testing.T) {
	cases := []struct {
		quantity int64
		want     stock.Priority
	}{
		{0, stock.PriorityCritical},
		{1, stock.PriorityHigh},
		{4, stock.PriorityHigh},
		{5, stock.PriorityMedium},
		{9, stock.PriorityMedium},
		{10, stock.PriorityLow},
		{250, stock.PriorityLow},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, stock.PriorityFor(tc.quantity), "cantidad %d", tc.quantity)
	}
}
