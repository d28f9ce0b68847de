package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/marquee-live/backoffice/internal/model"
)

func TestResolveLineupInstanceReplacesTemplate(t *testing.T) {
	instanceRows := []*model.EventInstanceBand{
		{InstanceID: 10, BandID: 7, Ord: 0},
		{InstanceID: 10, BandID: 3, Ord: 1},
	}
	templateRows := []*model.EventBand{
		{EventID: 1, BandID: 5, Ord: 0},
		{EventID: 1, BandID: 6, Ord: 1},
		{EventID: 1, BandID: 7, Ord: 2},
	}

	source, slots := resolveLineup(instanceRows, templateRows)
	assert.Equal(t, "instance", source)
	// the template set contributes nothing, not even bands absent from the
	// instance set
	assert.Equal(t, []lineupSlot{{bandID: 7, ord: 0}, {bandID: 3, ord: 1}}, slots)
}

func TestResolveLineupFallsBackToTemplate(t *testing.T) {
	templateRows := []*model.EventBand{
		{EventID: 1, BandID: 5, Ord: 0},
		{EventID: 1, BandID: 6, Ord: 1},
	}

	source, slots := resolveLineup(nil, templateRows)
	assert.Equal(t, "template", source)
	assert.Equal(t, []lineupSlot{{bandID: 5, ord: 0}, {bandID: 6, ord: 1}}, slots)
}

func TestResolveLineupBothEmpty(t *testing.T) {
	source, slots := resolveLineup(nil, nil)
	assert.Equal(t, "template", source)
	assert.Empty(t, slots)
}

func TestLineupRowsHaveDenseOrder(t *testing.T) {
	bandIDs := []int{42, 17, 99, 8}
	rows := lo.Map(bandIDs, func(bandID, i int) *model.EventBand {
		return &model.EventBand{EventID: 1, BandID: bandID, Ord: i}
	})

	for i, row := range rows {
		assert.Equal(t, i, row.Ord)
		assert.Equal(t, bandIDs[i], row.BandID)
	}
}
