package format

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "5,00 US$", Currency(decimal.NewFromInt(5)))
	assert.Equal(t, "0,50 US$", Currency(decimal.RequireFromString("0.499")))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Marlboro Gold", "marl"))
	assert.True(t, ContainsFold("CIG-001", "cig"))
	assert.False(t, ContainsFold("Heineken", "corona"))
}

func TestWindows1252Writer(t *testing.T) {
	var buf bytes.Buffer
	w := Windows1252Writer(&buf)
	_, err := w.Write([]byte("Código"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{'C', 0xF3, 'd', 'i', 'g', 'o'}, buf.Bytes())
}
