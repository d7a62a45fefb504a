// Package versioning implements the append-only version ledger: semver
// increments per action, text diffs, and per-stage history views.
package versioning

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Increment bumps a dotted major.minor.patch version for the given action:
//
//	validate, generate_code        → minor+1, patch=0
//	edit_logic, edit_code,
//	safety_check                   → patch+1
//
// An unparseable current version resets to the initial 1.0.0.
func Increment(current, action string) string {
	major, minor, patch, err := parseSemver(current)
	if err != nil {
		return models.InitialVersion
	}

	switch action {
	case models.ActionValidate, models.ActionGenerateCode:
		minor++
		patch = 0
	case models.ActionEditLogic, models.ActionEditCode, models.ActionSafetyCheck:
		patch++
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

// Compare orders two semver strings lexicographically by
// (major, minor, patch). Unparseable versions order as 1.0.0.
func Compare(a, b string) int {
	aMaj, aMin, aPat := parseOrInitial(a)
	bMaj, bMin, bPat := parseOrInitial(b)

	if aMaj != bMaj {
		return sign(aMaj - bMaj)
	}
	if aMin != bMin {
		return sign(aMin - bMin)
	}
	return sign(aPat - bPat)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func parseOrInitial(v string) (int, int, int) {
	major, minor, patch, err := parseSemver(v)
	if err != nil {
		return 1, 0, 0
	}
	return major, minor, patch
}

func parseSemver(v string) (major, minor, patch int, err error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid version %q", v)
	}
	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid version %q", v)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid version %q", v)
	}
	if patch, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid version %q", v)
	}
	return major, minor, patch, nil
}
