package handlers

// DefaultLocations returns the preset places offered by /v1/locations.
func DefaultLocations() []Location {
	return []Location{
		{Index: 0, Name: "San Jose", Latitude: 37.335480, Longitude: -121.893028},
		{Index: 1, Name: "Manila", Latitude: 12.8797, Longitude: 121.7740},
		{Index: 2, Name: "Italy", Latitude: 41.8719, Longitude: 12.5674},
	}
}
