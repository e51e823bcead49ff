package table

import "strings"

// Placeholder substitutes for any missing value in the output table.
const Placeholder = "N/A"

// SplitLocation parses a free-text location into (city, state) on the first
// comma. This is a heuristic, not geocoding: multi-comma and international
// formats still split on the first comma.
func SplitLocation(location string) (city, state string) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Placeholder, Placeholder
	}

	before, after, found := strings.Cut(location, ",")
	if !found {
		return location, Placeholder
	}

	city = strings.TrimSpace(before)
	state = strings.TrimSpace(after)
	if city == "" {
		city = Placeholder
	}
	if state == "" {
		state = Placeholder
	}
	return city, state
}
