package planner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Keyword families used to characterize raw control logic. Matching is
// case-insensitive substring containment except device extraction, which
// anchors on word boundaries.
var (
	startKeywords     = []string{"start", "begin", "initialize", "init", "startup"}
	stopKeywords      = []string{"stop", "end", "shutdown", "halt", "terminate"}
	emergencyKeywords = []string{"emergency", "e-stop", "estop", "abort", "panic"}
	safetyKeywords    = []string{"safety", "interlock", "guard", "protect", "secure"}
	sensorKeywords    = []string{"sensor", "detect", "check", "verify", "confirm"}
	actuatorKeywords  = []string{"motor", "valve", "cylinder", "conveyor", "pump", "heater"}
	conditionKeywords = []string{"if", "when", "while", "until", "after", "before"}
	sequenceKeywords  = []string{"then", "next", "after", "following", "subsequently"}
)

const maxComplexityPoints = 5

// Analyze computes the static feature record for raw control logic. Pure and
// deterministic; device lists are sorted.
func Analyze(text string) models.FlowAnalysis {
	sensors := extractDevices(text, sensorKeywords)
	actuators := extractDevices(text, actuatorKeywords)

	return models.FlowAnalysis{
		HasStart:        containsAny(text, startKeywords),
		HasStop:         containsAny(text, stopKeywords),
		HasEmergency:    containsAny(text, emergencyKeywords),
		HasSafety:       containsAny(text, safetyKeywords),
		Sensors:         sensors,
		Actuators:       actuators,
		HasConditions:   containsAny(text, conditionKeywords),
		HasSequence:     containsAny(text, sequenceKeywords),
		ComplexityScore: complexity(text, len(actuators)),
		WordCount:       len(strings.Fields(text)),
		LineCount:       len(strings.Split(text, "\n")),
	}
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractDevices returns deduplicated word-boundary matches of each keyword
// prefix, e.g. "motor" matches "motors" and "motorized".
func extractDevices(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})

	for _, kw := range keywords {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\w*\b`)
		for _, m := range re.FindAllString(lower, -1) {
			seen[m] = struct{}{}
		}
	}

	devices := make([]string, 0, len(seen))
	for d := range seen {
		devices = append(devices, d)
	}
	sort.Strings(devices)
	return devices
}

// complexity scores 0-15: word volume, condition keyword variety, and
// distinct actuator mentions each contribute up to 5 points.
func complexity(text string, actuatorCount int) int {
	lower := strings.ToLower(text)

	score := minInt(len(strings.Fields(text))/50, maxComplexityPoints)

	conditions := 0
	for _, kw := range conditionKeywords {
		if strings.Contains(lower, kw) {
			conditions++
		}
	}
	score += minInt(conditions, maxComplexityPoints)
	score += minInt(actuatorCount, maxComplexityPoints)
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
