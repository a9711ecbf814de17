package game

import (
	"testing"

	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/player"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCanJoin_TemporaryPlayerAlwaysEligible(t *testing.T) {
	g := &Game{Sport: "padel", RequiredCategories: models.StringSlice{"CAT 1"}}
	check := CanJoin(g, nil)
	assert.True(t, check.IsValid)
	assert.Empty(t, check.Message)
}

func TestCanJoin_PadelRequiresDeclaredCategory(t *testing.T) {
	g := &Game{Sport: "padel"}
	p := &player.Player{Name: "Ana"}

	check := CanJoin(g, p)
	assert.False(t, check.IsValid)
	assert.Contains(t, check.Message, "Padel category")
}

func TestCanJoin_PadelCategoryOutsideAllowedSet(t *testing.T) {
	g := &Game{Sport: "padel", RequiredCategories: models.StringSlice{"CAT 1", "CAT 2"}}
	p := &player.Player{PadelCategory: strPtr("CAT 3")}

	check := CanJoin(g, p)
	assert.False(t, check.IsValid)
	assert.Contains(t, check.Message, "CAT 1, CAT 2")
	assert.Contains(t, check.Message, "CAT 3")
}

func TestCanJoin_PadelCategoryInAllowedSet(t *testing.T) {
	g := &Game{Sport: "padel", RequiredCategories: models.StringSlice{"CAT 1", "CAT 2"}}
	p := &player.Player{PadelCategory: strPtr("CAT 2")}

	assert.True(t, CanJoin(g, p).IsValid)
}

func TestCanJoin_PadelOpenToAnyCategory(t *testing.T) {
	g := &Game{Sport: "padel"}
	p := &player.Player{PadelCategory: strPtr("CAT 6")}

	assert.True(t, CanJoin(g, p).IsValid)
}

func TestCanJoin_BeachTennisSymmetricRule(t *testing.T) {
	g := &Game{Sport: "beach_tennis", RequiredCategories: models.StringSlice{"CAT A", "PROFISSIONAL"}}

	missing := CanJoin(g, &player.Player{})
	assert.False(t, missing.IsValid)
	assert.Contains(t, missing.Message, "Beach Tennis category")

	outside := CanJoin(g, &player.Player{BeachTennisCategory: strPtr("INICIANTE")})
	assert.False(t, outside.IsValid)

	inside := CanJoin(g, &player.Player{BeachTennisCategory: strPtr("CAT A")})
	assert.True(t, inside.IsValid)
}

func TestCanJoin_TennisAlwaysEligible(t *testing.T) {
	g := &Game{Sport: "tennis", RequiredCategories: models.StringSlice{"5.0"}}
	p := &player.Player{Name: "Bruno"}

	assert.True(t, CanJoin(g, p).IsValid)
}
