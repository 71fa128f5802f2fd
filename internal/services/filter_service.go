package services

import (
	"Shelved/internal/models"
	"strings"
)

// FilterBoxes narrows the box list to the visible subset. A box passes when
// the query is empty or matches name, description, location or category as a
// case-insensitive substring, and the two equality filters (when non-empty)
// match location and category exactly. Input ordering is preserved.
func FilterBoxes(boxes []models.Box, query, locationEq, categoryEq string) []models.Box {
	q := strings.ToLower(query)
	filtered := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if q != "" && !matchesQuery(box, q) {
			continue
		}
		if locationEq != "" && box.Location != locationEq {
			continue
		}
		if categoryEq != "" && box.Category != categoryEq {
			continue
		}
		filtered = append(filtered, box)
	}
	return filtered
}

func matchesQuery(box models.Box, q string) bool {
	return strings.Contains(strings.ToLower(box.Name), q) ||
		strings.Contains(strings.ToLower(box.Description), q) ||
		strings.Contains(strings.ToLower(box.Location), q) ||
		strings.Contains(strings.ToLower(box.Category), q)
}
