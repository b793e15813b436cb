package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPrices(t *testing.T) {
	b := NewBank()
	for _, r := range AllResources {
		assert.Equal(t, DefaultResourcePrice, b.ResourcePrice[r])
	}
	assert.Equal(t, DefaultDiscardReward, b.DiscardReward)
}

func TestFloatingPriceTracksEnemyStock(t *testing.T) {
	b := NewBank()
	b.SetFloatingPrice(Clay, 3)
	assert.Equal(t, 5, b.ResourcePrice[Clay])

	b.SetFloatingPrice(Clay, 0)
	assert.Equal(t, 2, b.ResourcePrice[Clay])
}

func TestFixedPriceIgnoresEnemyStock(t *testing.T) {
	b := NewBank()
	b.FixPrice(Glass)
	assert.Equal(t, FixedResourcePrice, b.ResourcePrice[Glass])

	b.SetFloatingPrice(Glass, 4)
	assert.Equal(t, FixedResourcePrice, b.ResourcePrice[Glass])
}

func TestPriceOwnStockCoversFirst(t *testing.T) {
	b := NewBank()
	cost := Cost{Resources: Resources{Wood: 2}}

	assert.Equal(t, 4, b.Price(PayScopeGlobal, cost, Resources{}))
	assert.Equal(t, 2, b.Price(PayScopeGlobal, cost, Resources{Wood: 1}))
	assert.Equal(t, 0, b.Price(PayScopeGlobal, cost, Resources{Wood: 3}))
}

func TestPriceAddsCoinPart(t *testing.T) {
	b := NewBank()
	cost := Cost{Coins: 3, Resources: Resources{Stone: 1}}
	assert.Equal(t, 5, b.Price(PayScopeGlobal, cost, Resources{}))
}

func TestDiscountWaivesPriciestFirst(t *testing.T) {
	b := NewBank()
	b.SetFloatingPrice(Clay, 3)
	b.AddDiscount(Discount{Scope: PayScopeGlobal, Resources: AllResources, Count: 1})

	cost := Cost{Resources: Resources{Clay: 1, Wood: 1}}
	// Clay at 5 is waived, Wood bought at 2.
	assert.Equal(t, 2, b.Price(PayScopeGlobal, cost, Resources{}))
}

func TestDiscountTieKeepsCanonicalOrder(t *testing.T) {
	b := NewBank()
	b.AddDiscount(Discount{Scope: PayScopeGlobal, Resources: AllResources, Count: 1})

	cost := Cost{Resources: Resources{Wood: 1, Stone: 1}}
	// Equal prices: Wood comes first in canonical order and is waived.
	assert.Equal(t, 2, b.Price(PayScopeGlobal, cost, Resources{}))
}

func TestDiscountScope(t *testing.T) {
	b := NewBank()
	b.AddDiscount(Discount{Scope: PayScopeCivilian, Resources: AllResources, Count: 2})

	cost := Cost{Resources: Resources{Clay: 2}}
	assert.Equal(t, 0, b.Price(PayScopeCivilian, cost, Resources{}))
	assert.Equal(t, 4, b.Price(PayScopeGlobal, cost, Resources{}))
	assert.Equal(t, 4, b.Price(PayScopeWonders, cost, Resources{}))
}

func TestDiscountLimitedToCoveredResources(t *testing.T) {
	b := NewBank()
	b.AddDiscount(Discount{Scope: PayScopeGlobal, Resources: ManufacturedGoods, Count: 1})

	cost := Cost{Resources: Resources{Stone: 1, Papyrus: 1}}
	// Only the papyrus can be waived even though stone is equally priced.
	assert.Equal(t, 2, b.Price(PayScopeGlobal, cost, Resources{}))
}

func TestCostFree(t *testing.T) {
	assert.True(t, Cost{Resources: Resources{}}.Free())
	assert.False(t, Cost{Coins: 1}.Free())
	assert.False(t, Cost{Resources: Resources{Glass: 1}}.Free())
}

func TestResourcesCloneIsIndependent(t *testing.T) {
	rs := Resources{Clay: 2}
	clone := rs.Clone()
	clone[Clay] = 5
	assert.Equal(t, 2, rs[Clay])
	assert.Equal(t, 2, rs.Total())
}
