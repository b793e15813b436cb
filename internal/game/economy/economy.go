// Package economy implements resource pricing for the duel engine: per-city
// resource stocks, the bank with floating trade prices, fixed-price pins and
// payment discounts.
package economy

import "sort"

// Resource identifies one of the five tradeable resources.
type Resource int

const (
	Clay Resource = iota + 1
	Wood
	Stone
	Glass
	Papyrus
)

// AllResources lists every resource in a fixed order. Price and discount
// computations iterate this slice instead of map keys so results are
// deterministic.
var AllResources = []Resource{Clay, Wood, Stone, Glass, Papyrus}

// RawMaterials are the resources produced by raw-material buildings.
var RawMaterials = []Resource{Clay, Wood, Stone}

// ManufacturedGoods are the resources produced by manufactured-goods buildings.
var ManufacturedGoods = []Resource{Glass, Papyrus}

var resourceNames = map[Resource]string{
	Clay:    "Clay",
	Wood:    "Wood",
	Stone:   "Stone",
	Glass:   "Glass",
	Papyrus: "Papyrus",
}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Resources maps a resource to a non-negative count.
type Resources map[Resource]int

// Clone returns an independent copy.
func (rs Resources) Clone() Resources {
	out := make(Resources, len(rs))
	for r, n := range rs {
		if n > 0 {
			out[r] = n
		}
	}
	return out
}

// Total returns the sum of all counts.
func (rs Resources) Total() int {
	total := 0
	for _, r := range AllResources {
		total += rs[r]
	}
	return total
}

// PayScope identifies the payment context a discount applies to.
type PayScope int

const (
	// PayScopeGlobal matches every payment.
	PayScopeGlobal PayScope = iota
	// PayScopeCivilian matches civilian building payments.
	PayScopeCivilian
	// PayScopeWonders matches wonder construction payments.
	PayScopeWonders
)

var payScopeNames = map[PayScope]string{
	PayScopeGlobal:   "Global",
	PayScopeCivilian: "Civilian",
	PayScopeWonders:  "Wonders",
}

func (s PayScope) String() string {
	if name, ok := payScopeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Matches reports whether a discount with scope s applies to a payment in
// scope other.
func (s PayScope) Matches(other PayScope) bool {
	return s == PayScopeGlobal || s == other
}

// Cost is the price of a unit: a flat coin part and a resource part.
type Cost struct {
	Coins     int
	Resources Resources
}

// Free reports whether the cost demands nothing at all.
func (c Cost) Free() bool {
	return c.Coins == 0 && c.Resources.Total() == 0
}

// Discount waives up to Count resources drawn from Resources on every
// payment matching Scope. The priciest matching resource is waived first.
type Discount struct {
	Scope     PayScope
	Resources []Resource
	Count     int
}

// apply removes up to d.Count resources from need, consuming resources in
// the order given by priority (most expensive first).
func (d Discount) apply(need Resources, priority []Resource) {
	left := d.Count
	for _, r := range priority {
		if left == 0 {
			return
		}
		if !d.covers(r) {
			continue
		}
		n := need[r]
		if n == 0 {
			continue
		}
		if n > left {
			n = left
		}
		need[r] -= n
		left -= n
	}
}

func (d Discount) covers(r Resource) bool {
	for _, dr := range d.Resources {
		if dr == r {
			return true
		}
	}
	return false
}

const (
	// DefaultResourcePrice is the base coin price of a missing resource
	// before the opponent's stock raises it.
	DefaultResourcePrice = 2
	// FixedResourcePrice is the pinned price granted by reserve buildings.
	FixedResourcePrice = 1
	// DefaultDiscardReward is the base coin payout for discarding a card.
	DefaultDiscardReward = 2
)

// Bank tracks one city's view of the market: the coin price of each missing
// resource, which prices are pinned, active payment discounts and the
// current discard payout.
type Bank struct {
	ResourcePrice Resources
	fixed         map[Resource]bool
	Discounts     []Discount
	DiscardReward int
}

// NewBank returns a bank with default prices and discard reward.
func NewBank() *Bank {
	prices := make(Resources, len(AllResources))
	for _, r := range AllResources {
		prices[r] = DefaultResourcePrice
	}
	return &Bank{
		ResourcePrice: prices,
		fixed:         make(map[Resource]bool),
		DiscardReward: DefaultDiscardReward,
	}
}

// FixPrice pins the price of r to FixedResourcePrice permanently.
func (b *Bank) FixPrice(r Resource) {
	b.fixed[r] = true
	b.ResourcePrice[r] = FixedResourcePrice
}

// SetFloatingPrice updates the price of r from the opponent's stock unless
// the price is pinned.
func (b *Bank) SetFloatingPrice(r Resource, enemyStock int) {
	if b.fixed[r] {
		return
	}
	b.ResourcePrice[r] = DefaultResourcePrice + enemyStock
}

// AddDiscount registers a permanent payment discount.
func (b *Bank) AddDiscount(d Discount) {
	b.Discounts = append(b.Discounts, d)
}

// Price computes the coin price of cost for a city holding stock, in the
// given payment scope. Own stock covers resources first, then discounts
// waive the priciest remaining resources, then the rest is bought at the
// bank's current prices.
func (b *Bank) Price(scope PayScope, cost Cost, stock Resources) int {
	need := cost.Resources.Clone()
	for _, r := range AllResources {
		if n := need[r] - stock[r]; n > 0 {
			need[r] = n
		} else {
			delete(need, r)
		}
	}

	priority := b.priceOrder()
	for _, d := range b.Discounts {
		if d.Scope.Matches(scope) {
			d.apply(need, priority)
		}
	}

	price := cost.Coins
	for _, r := range AllResources {
		price += need[r] * b.ResourcePrice[r]
	}
	return price
}

// priceOrder returns the resources sorted by descending price. Ties keep
// the canonical resource order.
func (b *Bank) priceOrder() []Resource {
	order := make([]Resource, len(AllResources))
	copy(order, AllResources)
	sort.SliceStable(order, func(i, j int) bool {
		return b.ResourcePrice[order[i]] > b.ResourcePrice[order[j]]
	})
	return order
}
