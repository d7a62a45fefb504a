package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-controls/plcforge/pkg/models"
)

func TestIncrement_BumpTable(t *testing.T) {
	tests := []struct {
		name    string
		current string
		action  string
		want    string
	}{
		{"validate bumps minor and zeroes patch", "1.0.3", models.ActionValidate, "1.1.0"},
		{"generate_code bumps minor and zeroes patch", "1.2.5", models.ActionGenerateCode, "1.3.0"},
		{"edit_logic bumps patch", "1.0.0", models.ActionEditLogic, "1.0.1"},
		{"edit_code bumps patch", "1.1.0", models.ActionEditCode, "1.1.1"},
		{"safety_check bumps patch", "2.4.7", models.ActionSafetyCheck, "2.4.8"},
		{"unknown action keeps version", "1.2.3", "noop", "1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Increment(tt.current, tt.action))
		})
	}
}

func TestIncrement_UnparseableResetsToInitial(t *testing.T) {
	assert.Equal(t, "1.0.0", Increment("garbage", models.ActionValidate))
	assert.Equal(t, "1.0.0", Increment("1.2", models.ActionEditLogic))
	assert.Equal(t, "1.0.0", Increment("", models.ActionGenerateCode))
}

func TestIncrement_SequenceIsStrictlyIncreasing(t *testing.T) {
	actions := []string{
		models.ActionEditLogic,
		models.ActionValidate,
		models.ActionEditLogic,
		models.ActionGenerateCode,
		models.ActionSafetyCheck,
		models.ActionEditCode,
	}

	version := models.InitialVersion
	for _, action := range actions {
		next := Increment(version, action)
		assert.Equal(t, 1, Compare(next, version),
			"action %s must strictly increase %s → %s", action, version, next)
		version = next
	}
}

func TestIncrement_ScenarioEditValidateEditGenerate(t *testing.T) {
	// edit_logic → validate → edit_logic → generate_code from 1.0.0
	v := models.InitialVersion
	v = Increment(v, models.ActionEditLogic)
	assert.Equal(t, "1.0.1", v)
	v = Increment(v, models.ActionValidate)
	assert.Equal(t, "1.1.0", v)
	v = Increment(v, models.ActionEditLogic)
	assert.Equal(t, "1.1.1", v)
	v = Increment(v, models.ActionGenerateCode)
	assert.Equal(t, "1.2.0", v)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare("1.2.3", "1.2.3"))
	assert.Equal(t, -1, Compare("1.2.3", "1.2.4"))
	assert.Equal(t, 1, Compare("1.3.0", "1.2.9"))
	assert.Equal(t, 1, Compare("2.0.0", "1.9.9"))
}
