package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestMergeGlobalLabels(t *testing.T) {
	stage1 := []models.Label{
		{Name: "Start_Button", DataType: "Bool", Device: "X0"},
		{Name: "Run_Mode", DataType: "Bool", Device: "M0"},
	}
	stage2 := []models.Label{
		{Name: "Sensor1", DataType: "Bool", Device: "X1"},
		{Name: "Run_Mode", DataType: "Bool", Device: "M0"},
	}

	unified := MergeGlobalLabels(stage1, stage2)
	assert.Equal(t, []string{"Start_Button", "Run_Mode", "Sensor1"}, labelNames(unified))
}

func TestMergeGlobalLabelsDeviceConflict(t *testing.T) {
	// Two names claiming the same device: first seen wins.
	unified := MergeGlobalLabels(
		[]models.Label{{Name: "Start_Button", Device: "X0"}},
		[]models.Label{{Name: "Start_PB", Device: "X0"}},
	)
	assert.Equal(t, []string{"Start_Button"}, labelNames(unified))

	// Same name with a different device is also a duplicate.
	unified = MergeGlobalLabels(
		[]models.Label{{Name: "Start_Button", Device: "X0"}},
		[]models.Label{{Name: "Start_Button", Device: "X5"}},
	)
	assert.Equal(t, []string{"Start_Button"}, labelNames(unified))
	assert.Equal(t, "X0", unified[0].Device)
}

func TestMergeGlobalLabelsDropsEmptyIdentity(t *testing.T) {
	unified := MergeGlobalLabels(nil, []models.Label{{}, {Name: "Run_Mode"}})
	assert.Equal(t, []string{"Run_Mode"}, labelNames(unified))
}

func TestMergeAll(t *testing.T) {
	a := []models.Label{{Name: "Start_Button", Device: "X0"}}
	b := []models.Label{{Name: "Sensor1", Device: "X1"}}
	c := []models.Label{{Name: "Start_Button", Device: "X0"}, {Name: "Stop_Button", Device: "X2"}}

	unified := MergeAll(a, b, c)
	assert.Equal(t, []string{"Start_Button", "Sensor1", "Stop_Button"}, labelNames(unified))

	// Merging is idempotent.
	assert.Equal(t, unified, MergeAll(unified, unified))

	// Order of inputs changes ordering only, never membership.
	reversed := MergeAll(c, b, a)
	assert.ElementsMatch(t, unified, reversed)

	assert.Empty(t, MergeAll())
	assert.Empty(t, MergeAll(nil, nil))
}

func labelNames(labels []models.Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}
