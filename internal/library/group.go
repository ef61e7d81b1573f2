package library

import (
	"strings"

	"lingolab/internal/models"
)

// GroupAudio groups tracks by book and test. Groups appear in order of first
// appearance and files keep their input order.
func GroupAudio(files []models.AudioFile) []models.AudioGroup {
	groups := []models.AudioGroup{}
	index := make(map[string]int)

	for _, f := range files {
		key := f.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.AudioGroup{Key: key})
		}
		groups[i].Files = append(groups[i].Files, f)
	}
	return groups
}

// FilterMaterials returns the items in category; "all" or empty returns everything
func FilterMaterials(items []models.MaterialItem, category string) []models.MaterialItem {
	if category == "" || strings.EqualFold(category, "all") {
		return items
	}
	filtered := []models.MaterialItem{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
