package safety

import (
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Parser sections of the interrogator's output.
const (
	sectionNone = iota
	sectionCompliance
	sectionHazards
	sectionViolations
	sectionActions
	sectionRecommendations
)

// ParseSafetyReport scans the interrogator's sectioned output line by line.
// Parsing is best-effort: missing sections yield empty fields. An absent or
// unrecognized status line defaults to UNSAFE, an absent severity to UNKNOWN.
func ParseSafetyReport(text string) *models.SafetyReport {
	report := &models.SafetyReport{
		OverallStatus:   models.SafetyStatusUnsafe,
		Severity:        "UNKNOWN",
		Hazards:         []string{},
		Violations:      []string{},
		RequiredActions: []string{},
		Recommendations: []string{},
	}

	switch {
	case strings.Contains(text, "Overall Status: SAFE"):
		report.OverallStatus = models.SafetyStatusSafe
	case strings.Contains(text, "Overall Status: WARNING"):
		report.OverallStatus = models.SafetyStatusWarning
	}

	for _, severity := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		if strings.Contains(text, "Severity: "+severity) {
			report.Severity = severity
			break
		}
	}

	section := sectionNone
	var compliance []string

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "SAFETY COMPLIANCE CHECK"):
			section = sectionCompliance
			continue
		case strings.Contains(line, "POTENTIAL HAZARDS"):
			section = sectionHazards
			continue
		case strings.Contains(line, "SAFETY VIOLATIONS"):
			section = sectionViolations
			continue
		case strings.Contains(line, "REQUIRED ACTIONS"):
			section = sectionActions
			continue
		case strings.Contains(line, "RECOMMENDATIONS"):
			section = sectionRecommendations
			continue
		case strings.HasPrefix(stripped, "==="):
			continue
		case stripped == "":
			continue
		}

		switch section {
		case sectionCompliance:
			compliance = append(compliance, line)
		case sectionHazards:
			if item, ok := bulletItem(stripped); ok {
				report.Hazards = append(report.Hazards, item)
			}
		case sectionViolations:
			if item, ok := bulletItem(stripped); ok {
				report.Violations = append(report.Violations, item)
			}
		case sectionActions:
			if item, ok := bulletItem(stripped); ok {
				report.RequiredActions = append(report.RequiredActions, item)
			}
		case sectionRecommendations:
			if item, ok := bulletItem(stripped); ok {
				report.Recommendations = append(report.Recommendations, item)
			}
		}
	}

	report.ComplianceCheck = strings.TrimSpace(strings.Join(compliance, "\n"))
	return report
}

func bulletItem(line string) (string, bool) {
	if !strings.HasPrefix(line, "-") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "-")), true
}
