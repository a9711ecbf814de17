// internal/sport/sport.go
package sport

// Sport is the canonical sport tag. One tag per sport everywhere; the old
// "beach-tennis" / "beach_tennis" split is normalized here.
type Sport string

const (
	Padel       Sport = "padel"
	BeachTennis Sport = "beach_tennis"
	Tennis      Sport = "tennis"
)

// All lists every supported sport.
var All = []Sport{Padel, BeachTennis, Tennis}

// PadelCategories are ordered best to worst.
var PadelCategories = []string{"CAT 1", "CAT 2", "CAT 3", "CAT 4", "CAT 5", "CAT 6"}

// BeachTennisCategories are ordered worst to best.
var BeachTennisCategories = []string{"INICIANTE", "CAT C", "CAT B", "CAT A", "PROFISSIONAL"}

// IsValid reports whether s is a known sport tag.
func IsValid(s string) bool {
	for _, sp := range All {
		if string(sp) == s {
			return true
		}
	}
	return false
}

// IsValidCategory reports whether label is a recognized category for s.
// Tennis uses a free numeric scale and accepts any non-empty label.
func IsValidCategory(s Sport, label string) bool {
	switch s {
	case Padel:
		return contains(PadelCategories, label)
	case BeachTennis:
		return contains(BeachTennisCategories, label)
	case Tennis:
		return label != ""
	}
	return false
}

// CategoryAllowed reports whether a player's category satisfies a game's
// allowed-category set. An empty set leaves the axis unconstrained; a set
// category is checked by membership, not ordinal proximity.
func CategoryAllowed(playerCategory *string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	if playerCategory == nil {
		return false
	}
	return contains(allowed, *playerCategory)
}

// CategoriesEqual is the strict equality gate used by availability
// matching. Two unset categories are not equal: players who never declared
// a category do not match each other on the category axis.
func CategoriesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
