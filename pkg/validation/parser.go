package validation

import (
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Parser sections of the validator's output.
const (
	sectionNone = iota
	sectionStatus
	sectionIssues
	sectionRecommendations
	sectionCategorized
	sectionAnalysis
)

// ParseValidationReport scans the model's sectioned output line by line.
// Sections are best-effort: anything unparseable yields empty fields, never
// an error. A report is valid iff it contains no critical categorized issue.
func ParseValidationReport(text string) *models.ValidationReport {
	report := &models.ValidationReport{
		Status:            "FAIL",
		Issues:            []string{},
		Recommendations:   []string{},
		CategorizedIssues: []models.CategorizedIssue{},
	}

	if strings.Contains(text, "Status: PASS") {
		report.Status = "PASS"
	}

	section := sectionNone
	var current *models.CategorizedIssue
	inRecommendedLogic := false

	commit := func() {
		if current != nil {
			current.RecommendedLogic = strings.TrimSpace(current.RecommendedLogic)
			report.CategorizedIssues = append(report.CategorizedIssues, *current)
			current = nil
		}
		inRecommendedLogic = false
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "VALIDATION STATUS"):
			section = sectionStatus
			continue
		case stripped == "==============================":
			continue
		case strings.Contains(line, "CATEGORIZED ISSUES"):
			section = sectionCategorized
			continue
		case strings.HasPrefix(stripped, "ISSUES") && !strings.Contains(line, "CATEGORIZED"):
			section = sectionIssues
			continue
		case strings.Contains(line, "RECOMMENDATIONS") && section != sectionCategorized:
			section = sectionRecommendations
			continue
		case strings.Contains(line, "ANALYSIS SUMMARY"):
			commit()
			section = sectionAnalysis
			continue
		}

		switch section {
		case sectionIssues:
			if item, ok := bulletItem(stripped); ok {
				report.Issues = append(report.Issues, item)
			}
		case sectionRecommendations:
			if item, ok := bulletItem(stripped); ok {
				report.Recommendations = append(report.Recommendations, item)
			}
		case sectionCategorized:
			if stripped == "" {
				continue
			}
			if severity, title, ok := severityHeader(stripped); ok {
				commit()
				current = &models.CategorizedIssue{Severity: severity, Title: title}
				continue
			}
			if current == nil {
				continue
			}
			switch {
			case strings.HasPrefix(stripped, "Description:"):
				current.Description = strings.TrimSpace(strings.TrimPrefix(stripped, "Description:"))
			case strings.HasPrefix(stripped, "Recommended Logic:"):
				inRecommendedLogic = true
				if rest := strings.TrimSpace(strings.TrimPrefix(stripped, "Recommended Logic:")); rest != "" {
					current.RecommendedLogic = rest + " "
				}
			case inRecommendedLogic:
				current.RecommendedLogic += stripped + " "
			}
		case sectionAnalysis:
			switch {
			case strings.HasPrefix(stripped, "Semantic Analysis:"):
				report.SemanticAnalysis = strings.TrimSpace(strings.TrimPrefix(stripped, "Semantic Analysis:"))
			case strings.HasPrefix(stripped, "Logical Consistency:"):
				report.LogicalConsistency = strings.TrimSpace(strings.TrimPrefix(stripped, "Logical Consistency:"))
			case strings.HasPrefix(stripped, "Safety Compliance:"):
				report.SafetyCompliance = strings.TrimSpace(strings.TrimPrefix(stripped, "Safety Compliance:"))
			}
		}
	}
	commit()

	// Verdict follows the critical-issue rule, overriding the status line.
	if countCritical(report.CategorizedIssues) == 0 {
		report.Valid = true
		report.Status = "PASS"
	} else {
		report.Valid = false
		report.Status = "FAIL"
	}

	return report
}

func bulletItem(stripped string) (string, bool) {
	if !strings.HasPrefix(stripped, "-") {
		return "", false
	}
	item := strings.TrimSpace(strings.TrimPrefix(stripped, "-"))
	return item, item != ""
}

func severityHeader(stripped string) (severity, title string, ok bool) {
	for tag, sev := range map[string]string{
		"[CRITICAL]": models.SeverityCritical,
		"[MODERATE]": models.SeverityModerate,
		"[OPTIONAL]": models.SeverityOptional,
	} {
		if strings.HasPrefix(stripped, tag) {
			return sev, strings.TrimSpace(strings.TrimPrefix(stripped, tag)), true
		}
	}
	return "", "", false
}
