package theme

// PreferenceKey is the key a visitor's chosen theme is stored under.
const PreferenceKey = "theme"

// IsPreference reports whether name may be stored as a visitor preference.
// Only the light default and the tech-noir dark theme are offered to
// visitors; other stored values are ignored.
func IsPreference(name Name) bool {
	return name == Default || name == TechNoir
}

// Toggle returns the other visitor-selectable theme.
func Toggle(name Name) Name {
	if name == TechNoir {
		return Default
	}
	return TechNoir
}

// PreferenceStore persists a visitor's theme choice between requests.
type PreferenceStore interface {
	// Load returns the stored name, or "" if nothing is stored.
	Load() (Name, error)
	Save(Name) error
}

// ResolvePreference returns the stored preference when it is valid, and
// fallback otherwise. Store errors are treated as an absent preference.
func ResolvePreference(store PreferenceStore, fallback Name) Name {
	if store == nil {
		return fallback
	}
	name, err := store.Load()
	if err != nil || !IsPreference(name) {
		return fallback
	}
	return name
}
