package codegen

import "github.com/nexus-controls/plcforge/pkg/models"

// MergeGlobalLabels unions two global label lists. Identity is the device
// when assigned, the name otherwise; duplicates by device or by name are
// dropped silently and first-seen order is preserved.
func MergeGlobalLabels(existing, incoming []models.Label) []models.Label {
	unified := make([]models.Label, 0, len(existing)+len(incoming))
	devices := make(map[string]struct{})
	names := make(map[string]struct{})

	add := func(label models.Label) {
		if label.Identity() == "" {
			return
		}
		if label.Device != "" {
			if _, dup := devices[label.Device]; dup {
				return
			}
		}
		if label.Name != "" {
			if _, dup := names[label.Name]; dup {
				return
			}
		}
		unified = append(unified, label)
		if label.Device != "" {
			devices[label.Device] = struct{}{}
		}
		if label.Name != "" {
			names[label.Name] = struct{}{}
		}
	}

	for _, label := range existing {
		add(label)
	}
	for _, label := range incoming {
		add(label)
	}
	return unified
}

// MergeAll folds per-stage global label lists into one unified list.
func MergeAll(labelSets ...[]models.Label) []models.Label {
	unified := []models.Label{}
	for _, set := range labelSets {
		unified = MergeGlobalLabels(unified, set)
	}
	return unified
}
