package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"exact", "Back Pack", "Back Pack", true},
		{"lowercase", "back pack", "Back Pack", true},
		{"uppercase", "TOOL BAG", "Tool Bag", true},
		{"whitespace", "  Tote Bag  ", "Tote Bag", true},
		{"mixed case insulated", "insulated BAG", "Insulated bag", true},
		{"tablet cases", "tablet CASES", "Tablet cases", true},
		{"unknown", "Suitcase", "", false},
		{"empty", "", "", false},
		{"partial", "Back", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugifyFolderName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Back Pack", "back-pack"},
		{"Tool Bag", "tool-bag"},
		{"  Laptop   Bag  ", "laptop-bag"},
		{"Bags & Cases", "bags-and-cases"},
		{"--weird__input--", "weird-input"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlugifyFolderName(tt.input), "input %q", tt.input)
	}
}

func TestProductDocID(t *testing.T) {
	assert.Equal(t, "user-1_back-pack", ProductDocID("user-1", "Back Pack"))
	assert.Equal(t, "user-1_headphone-bag", ProductDocID("user-1", "Headphone Bag"))
}

func TestCategoryCapErrorMessage(t *testing.T) {
	err := &CategoryCapError{Existing: 7}
	assert.Equal(t, "This category already has 7 images. You can upload only 3 more.", err.Error())
}

func TestRemoveFirst(t *testing.T) {
	t.Run("removes exactly one match", func(t *testing.T) {
		got, ok := removeFirst([]string{"a", "b", "a", "c"}, "a")
		assert.True(t, ok)
		assert.Equal(t, []string{"b", "a", "c"}, got)
	})

	t.Run("keeps order", func(t *testing.T) {
		got, ok := removeFirst([]string{"x", "y", "z"}, "y")
		assert.True(t, ok)
		assert.Equal(t, []string{"x", "z"}, got)
	})

	t.Run("absent url leaves slice unchanged", func(t *testing.T) {
		in := []string{"x", "y"}
		got, ok := removeFirst(in, "nope")
		assert.False(t, ok)
		assert.Equal(t, []string{"x", "y"}, got)
	})
}

func TestPresetCategoriesUnchanged(t *testing.T) {
	assert.Len(t, PresetCategories, 10)
	for _, c := range PresetCategories {
		resolved, ok := ResolveCategory(c)
		assert.True(t, ok)
		assert.Equal(t, c, resolved)
	}
}
