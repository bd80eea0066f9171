package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuantityDerivesInStock(t *testing.T) {
	p := &Product{InStock: false}

	p.SetQuantity(4)
	require.NotNil(t, p.Quantity)
	assert.Equal(t, 4, *p.Quantity)
	assert.True(t, p.InStock)

	p.SetQuantity(0)
	assert.Equal(t, 0, *p.Quantity)
	assert.False(t, p.InStock)
}

func TestDecrementFloorsAtZero(t *testing.T) {
	p := &Product{}
	p.SetQuantity(10)

	p.Decrement(3)
	assert.Equal(t, 7, *p.Quantity)
	assert.True(t, p.InStock)

	p.Decrement(50)
	assert.Equal(t, 0, *p.Quantity)
	assert.False(t, p.InStock)
}

func TestDecrementWithoutQuantity(t *testing.T) {
	p := &Product{InStock: true}

	p.Decrement(2)

	assert.Nil(t, p.Quantity)
	assert.True(t, p.InStock)
}
