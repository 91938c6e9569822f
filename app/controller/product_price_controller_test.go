package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "$12.500", priceDisplay(1250000, "COP"))
	assert.Equal(t, "$0", priceDisplay(0, "COP"))
	assert.Equal(t, "$1.234.567", priceDisplay(123456700, "COP"))
	assert.Equal(t, "", priceDisplay(1250000, "USD"))
}

func TestPricePath(t *testing.T) {
	productID, tier, ok := pricePath("/admin/products/collar-rojo/prices/retail")
	assert.True(t, ok)
	assert.Equal(t, "collar-rojo", productID)
	assert.Equal(t, "retail", tier)

	productID, tier, ok = pricePath("/admin/products/collar-rojo/prices")
	assert.True(t, ok)
	assert.Equal(t, "collar-rojo", productID)
	assert.Equal(t, "", tier)

	_, _, ok = pricePath("/admin/products/prices")
	assert.False(t, ok)
}
