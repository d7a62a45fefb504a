package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-controls/plcforge/pkg/models"
)

const sampleInterrogation = `==============================
SAFETY ASSESSMENT
==============================
Overall Status: WARNING
Severity: MEDIUM

==============================
SAFETY COMPLIANCE CHECK
==============================
The program honors the emergency stop rule but lacks a guard-door interlock
before motor start.

==============================
POTENTIAL HAZARDS IDENTIFIED
==============================
- Hazard 1: Motor may start while guard door is open
- Hazard 2: No audible alarm before conveyor start

==============================
SAFETY VIOLATIONS
==============================
- Violation 1: Rule 4.2 requires a door interlock on all rotating equipment

==============================
REQUIRED ACTIONS
==============================
- Action 1: Add Door_Closed condition to the motor start rung

==============================
RECOMMENDATIONS
==============================
- Add a 3 second pre-start warning horn
- Log emergency stop activations
`

func TestParseSafetyReport_Sections(t *testing.T) {
	report := ParseSafetyReport(sampleInterrogation)

	assert.Equal(t, models.SafetyStatusWarning, report.OverallStatus)
	assert.Equal(t, "MEDIUM", report.Severity)
	assert.True(t, report.Passed() == false || report.OverallStatus == models.SafetyStatusSafe)

	assert.Contains(t, report.ComplianceCheck, "guard-door interlock")
	assert.Equal(t, []string{
		"Hazard 1: Motor may start while guard door is open",
		"Hazard 2: No audible alarm before conveyor start",
	}, report.Hazards)
	assert.Equal(t, []string{
		"Violation 1: Rule 4.2 requires a door interlock on all rotating equipment",
	}, report.Violations)
	assert.Equal(t, []string{
		"Action 1: Add Door_Closed condition to the motor start rung",
	}, report.RequiredActions)
	assert.Len(t, report.Recommendations, 2)
}

func TestParseSafetyReport_SafePasses(t *testing.T) {
	report := ParseSafetyReport(`SAFETY ASSESSMENT
Overall Status: SAFE
Severity: LOW

SAFETY COMPLIANCE CHECK
All safety rules satisfied.`)

	assert.Equal(t, models.SafetyStatusSafe, report.OverallStatus)
	assert.Equal(t, "LOW", report.Severity)
	assert.True(t, report.Passed())
	assert.Empty(t, report.Hazards)
	assert.Empty(t, report.Violations)
}

func TestParseSafetyReport_DefaultsToUnsafe(t *testing.T) {
	report := ParseSafetyReport("the model rambled and produced nothing structured")

	assert.Equal(t, models.SafetyStatusUnsafe, report.OverallStatus)
	assert.Equal(t, "UNKNOWN", report.Severity)
	assert.False(t, report.Passed())
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "No labels", formatLabels(nil))

	labels := []models.Label{
		{Name: "Start_Button", DataType: "Bool"},
		{Name: "Motor_Speed", DataType: "Word [Signed]"},
	}
	assert.Equal(t, "- Start_Button: Bool\n- Motor_Speed: Word [Signed]", formatLabels(labels))

	many := make([]models.Label, 14)
	for i := range many {
		many[i] = models.Label{Name: "L", DataType: "Bool"}
	}
	formatted := formatLabels(many)
	assert.Contains(t, formatted, "... and 4 more")
}
