package services

import (
	"Shelved/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Box {
	return []models.Box{
		{BaseModel: models.BaseModel{ID: 3}, Name: "Tools", Location: "Garage", Category: "Hardware", Description: "hammers and drills"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Winter Clothes", Location: "Attic", Category: "Clothing"},
		{BaseModel: models.BaseModel{ID: 1}, Name: "Kitchen Stuff", Location: "Basement", Category: "Household", Description: "plates"},
	}
}

func TestFilterBoxes_EmptyFiltersReturnAll(t *testing.T) {
	boxes := filterFixture()
	filtered := FilterBoxes(boxes, "", "", "")
	assert.Equal(t, boxes, filtered)
}

func TestFilterBoxes_QueryMatchesAllFields(t *testing.T) {
	boxes := filterFixture()

	tests := []struct {
		name  string
		query string
		want  []uint
	}{
		{"matches box name", "tools", []uint{3}},
		{"matches description", "plates", []uint{1}},
		{"matches location", "attic", []uint{2}},
		{"matches category", "hardware", []uint{3}},
		{"case-insensitive", "WINTER", []uint{2}},
		{"substring in the middle", "ill", []uint{3}},
		{"no match", "garden", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterBoxes(boxes, tt.query, "", "")
			var ids []uint
			for _, box := range filtered {
				ids = append(ids, box.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterBoxes_LocationMatchesExactly(t *testing.T) {
	boxes := filterFixture()

	filtered := FilterBoxes(boxes, "", "Garage", "")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Tools", filtered[0].Name)

	// no substring or case folding on the equality filters
	assert.Len(t, FilterBoxes(boxes, "", "Gar", ""), 0)
	assert.Len(t, FilterBoxes(boxes, "", "garage", ""), 0)
}

func TestFilterBoxes_CategoryMatchesExactly(t *testing.T) {
	boxes := filterFixture()

	filtered := FilterBoxes(boxes, "", "", "Clothing")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Winter Clothes", filtered[0].Name)
	assert.Len(t, FilterBoxes(boxes, "", "", "clothing"), 0)
}

func TestFilterBoxes_CombinedCriteria(t *testing.T) {
	boxes := filterFixture()

	filtered := FilterBoxes(boxes, "hammers", "Garage", "Hardware")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Tools", filtered[0].Name)

	// all criteria must hold at once
	assert.Len(t, FilterBoxes(boxes, "hammers", "Attic", ""), 0)
}

func TestFilterBoxes_MissingDescriptionTreatedAsEmpty(t *testing.T) {
	boxes := []models.Box{{Name: "Bare", Location: "Attic", Category: "Misc"}}

	assert.Len(t, FilterBoxes(boxes, "bare", "", ""), 1)
	assert.Len(t, FilterBoxes(boxes, "anything", "", ""), 0)
}

func TestFilterBoxes_PreservesInputOrder(t *testing.T) {
	boxes := filterFixture()
	filtered := FilterBoxes(boxes, "", "", "")
	for i := 1; i < len(filtered); i++ {
		assert.True(t, filtered[i-1].ID > filtered[i].ID)
	}
}
