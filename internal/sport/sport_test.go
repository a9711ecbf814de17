package sport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryAllowed(t *testing.T) {
	tests := []struct {
		name     string
		category *string
		allowed  []string
		want     bool
	}{
		{"empty set is unconstrained", strPtr("CAT 3"), nil, true},
		{"empty set with nil category", nil, nil, true},
		{"member of set", strPtr("CAT 2"), []string{"CAT 1", "CAT 2"}, true},
		{"not a member", strPtr("CAT 3"), []string{"CAT 1", "CAT 2"}, false},
		{"nil category against non-empty set", nil, []string{"CAT 1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryAllowed(tt.category, tt.allowed))
		})
	}
}

func TestCategoriesEqual(t *testing.T) {
	assert.True(t, CategoriesEqual(strPtr("CAT 3"), strPtr("CAT 3")))
	assert.False(t, CategoriesEqual(strPtr("CAT 3"), strPtr("CAT 4")))
	assert.False(t, CategoriesEqual(strPtr("CAT 3"), nil))
	assert.False(t, CategoriesEqual(nil, strPtr("CAT 3")))
	// Two undeclared categories never match.
	assert.False(t, CategoriesEqual(nil, nil))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(Padel, "CAT 1"))
	assert.True(t, IsValidCategory(Padel, "CAT 6"))
	assert.False(t, IsValidCategory(Padel, "CAT 7"))
	assert.True(t, IsValidCategory(BeachTennis, "INICIANTE"))
	assert.True(t, IsValidCategory(BeachTennis, "PROFISSIONAL"))
	assert.False(t, IsValidCategory(BeachTennis, "CAT 1"))
	assert.True(t, IsValidCategory(Tennis, "4.5"))
	assert.False(t, IsValidCategory(Tennis, ""))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("padel"))
	assert.True(t, IsValid("beach_tennis"))
	assert.True(t, IsValid("tennis"))
	assert.False(t, IsValid("beach-tennis"))
	assert.False(t, IsValid("cricket"))
}
