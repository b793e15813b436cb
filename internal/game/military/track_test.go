package military

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceIntoZones(t *testing.T) {
	var me, enemy Track

	fine, supremacy := me.Advance(&enemy, 1)
	assert.Equal(t, 0, fine)
	assert.False(t, supremacy)
	assert.Equal(t, 1, me.Pos)
	assert.Equal(t, 2, me.Points())

	fine, _ = me.Advance(&enemy, 2)
	assert.Equal(t, 2, fine)
	assert.Equal(t, 3, me.Pos)
	assert.Equal(t, 5, me.Points())

	fine, _ = me.Advance(&enemy, 3)
	assert.Equal(t, 5, fine)
	assert.Equal(t, 6, me.Pos)
	assert.Equal(t, 10, me.Points())
}

func TestAdvanceCancelsEnemyFirst(t *testing.T) {
	var me, enemy Track
	enemy.Pos = 3

	fine, supremacy := me.Advance(&enemy, 2)
	assert.Equal(t, 0, fine)
	assert.False(t, supremacy)
	assert.Equal(t, 1, enemy.Pos)
	assert.Equal(t, 0, me.Pos)

	fine, _ = me.Advance(&enemy, 3)
	assert.Equal(t, 0, fine)
	assert.Equal(t, 0, enemy.Pos)
	assert.Equal(t, 2, me.Pos)
}

func TestFineChargedOncePerZone(t *testing.T) {
	var me, enemy Track

	fine, _ := me.Advance(&enemy, 4)
	assert.Equal(t, 2, fine)

	// Pushed back and advancing into the same zone again.
	enemy.Advance(&me, 2)
	fine, _ = me.Advance(&enemy, 3)
	assert.Equal(t, 0, fine)
	assert.Equal(t, 5, me.Pos)
}

func TestCrossingTwoZonesChargesDeepestFineOnly(t *testing.T) {
	var me, enemy Track

	fine, supremacy := me.Advance(&enemy, 7)
	assert.Equal(t, 5, fine)
	assert.False(t, supremacy)
	assert.Equal(t, 7, me.Pos)
	assert.Equal(t, 3, me.MaxZone)

	// Falling back and re-entering the middle zone charges nothing.
	enemy.Advance(&me, 5)
	fine, _ = me.Advance(&enemy, 2)
	assert.Equal(t, 0, fine)
	assert.Equal(t, 4, me.Pos)
}

func TestSupremacyAtCapital(t *testing.T) {
	var me, enemy Track
	me.Pos = 7
	me.MaxZone = 3

	fine, supremacy := me.Advance(&enemy, 5)
	assert.Equal(t, 0, fine)
	assert.True(t, supremacy)
	assert.Equal(t, CapitalPos, me.Pos)
}

func TestAdvanceWithoutPower(t *testing.T) {
	var me, enemy Track
	enemy.Pos = 2

	fine, supremacy := me.Advance(&enemy, 0)
	assert.Equal(t, 0, fine)
	assert.False(t, supremacy)
	assert.Equal(t, 2, enemy.Pos)
}
