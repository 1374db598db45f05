package models

import "strconv"

// Show is the normalized display record for one television series
type Show struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // Markup from the catalog, passed through as-is
	Image   string `json:"image"`   // Never empty, falls back to the configured image URL
}

// Ref returns the show identifier in the form accepted by episode lookups.
func (s Show) Ref() string {
	return strconv.FormatInt(s.ID, 10)
}
