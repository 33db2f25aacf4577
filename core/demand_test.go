package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vrpcore/core"
)

func TestSingleLoad_CanFit(t *testing.T) {
	assert.True(t, core.SingleLoad(5).CanFit(core.SingleLoad(10)))
	assert.False(t, core.SingleLoad(11).CanFit(core.SingleLoad(10)))
}

func TestMultiLoad_Componentwise(t *testing.T) {
	a := core.MultiLoad{1, 2, 3}
	b := core.MultiLoad{3, 2, 1}

	sum := a.Add(b).(core.MultiLoad)
	assert.Equal(t, core.MultiLoad{4, 4, 4}, sum)

	diff := a.Sub(b).(core.MultiLoad)
	assert.Equal(t, core.MultiLoad{-2, 0, 2}, diff)

	assert.True(t, core.MultiLoad{1, 1, 1}.CanFit(core.MultiLoad{2, 2, 2}))
	assert.False(t, core.MultiLoad{3, 1, 1}.CanFit(core.MultiLoad{2, 2, 2}))
}

func TestMultiLoad_WidthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		core.MultiLoad{1, 2}.Add(core.MultiLoad{1, 2, 3})
	})
}

func TestDemand_IsEmpty(t *testing.T) {
	var d core.Demand
	assert.True(t, d.IsEmpty())

	d.Pickup.Static = core.SingleLoad(1)
	assert.False(t, d.IsEmpty())
}
