package models

// SortOption selects the ordering applied to a user's note list.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortTitleAsc  SortOption = "titleAsc"
	SortTitleDesc SortOption = "titleDesc"
)

// Valid reports whether s is one of the known sort options.
func (s SortOption) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

// UserPreferences holds per-user settings.
type UserPreferences struct {
	SortOption SortOption `json:"sortOption"`
}

// DefaultPreferences returns the preferences used before a user has stored any.
func DefaultPreferences() UserPreferences {
	return UserPreferences{SortOption: SortNewest}
}
