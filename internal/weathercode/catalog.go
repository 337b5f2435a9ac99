package weathercode

import "sort"

const (
	UnknownDescription = "Unknown"
	UnknownIconID      = "unknown"
)

// Category is the display form of a WMO weather code.
type Category struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	IconID      string `json:"icon_id"`
}

// Unknown returns the category used for codes missing from a catalog.
func Unknown(code int) Category {
	return Category{
		Code:        code,
		Description: UnknownDescription,
		IconID:      UnknownIconID,
	}
}

// IsUnknown reports whether c is the fallback category.
func (c Category) IsUnknown() bool {
	return c.Description == UnknownDescription && c.IconID == UnknownIconID
}

// Catalog is a read-only lookup table. It is safe for concurrent use.
type Catalog struct {
	categories []Category
	byCode     map[int]Category
}

// NewCatalog builds a catalog from the given categories. A later entry for the
// same code replaces an earlier one.
func NewCatalog(categories ...Category) *Catalog {
	byCode := make(map[int]Category, len(categories))
	for _, c := range categories {
		byCode[c.Code] = c
	}

	ordered := make([]Category, 0, len(byCode))
	for _, c := range byCode {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Code < ordered[j].Code
	})

	return &Catalog{
		categories: ordered,
		byCode:     byCode,
	}
}

func (c *Catalog) Resolve(code int) Category {
	if c == nil {
		return Unknown(code)
	}

	category, ok := c.byCode[code]
	if !ok {
		return Unknown(code)
	}

	return category
}

// Categories returns a copy of the table ordered by code.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}

	out := make([]Category, len(c.categories))
	copy(out, c.categories)

	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.categories)
}

// WMO weather interpretation codes as published by Open-Meteo.
var wmoCategories = []Category{
	{Code: 0, Description: "Clear sky", IconID: "clear"},
	{Code: 1, Description: "Mainly clear", IconID: "mostly-clear"},
	{Code: 2, Description: "Partly cloudy", IconID: "partly-cloudy"},
	{Code: 3, Description: "Overcast", IconID: "overcast"},
	{Code: 45, Description: "Fog", IconID: "fog"},
	{Code: 48, Description: "Depositing rime fog", IconID: "fog"},
	{Code: 51, Description: "Light drizzle", IconID: "drizzle"},
	{Code: 53, Description: "Moderate drizzle", IconID: "drizzle"},
	{Code: 55, Description: "Dense drizzle", IconID: "drizzle"},
	{Code: 56, Description: "Light freezing drizzle", IconID: "freezing-drizzle"},
	{Code: 57, Description: "Dense freezing drizzle", IconID: "freezing-drizzle"},
	{Code: 61, Description: "Slight rain", IconID: "rain"},
	{Code: 63, Description: "Moderate rain", IconID: "rain"},
	{Code: 65, Description: "Heavy rain", IconID: "heavy-rain"},
	{Code: 66, Description: "Light freezing rain", IconID: "freezing-rain"},
	{Code: 67, Description: "Heavy freezing rain", IconID: "freezing-rain"},
	{Code: 71, Description: "Slight snow fall", IconID: "snow"},
	{Code: 73, Description: "Moderate snow fall", IconID: "snow"},
	{Code: 75, Description: "Heavy snow fall", IconID: "heavy-snow"},
	{Code: 77, Description: "Snow grains", IconID: "snow"},
	{Code: 80, Description: "Slight rain showers", IconID: "showers"},
	{Code: 81, Description: "Moderate rain showers", IconID: "showers"},
	{Code: 82, Description: "Violent rain showers", IconID: "heavy-rain"},
	{Code: 85, Description: "Slight snow showers", IconID: "snow-showers"},
	{Code: 86, Description: "Heavy snow showers", IconID: "snow-showers"},
	{Code: 95, Description: "Thunderstorm", IconID: "thunderstorm"},
	{Code: 96, Description: "Thunderstorm with slight hail", IconID: "thunderstorm-hail"},
	{Code: 99, Description: "Thunderstorm with heavy hail", IconID: "thunderstorm-hail"},
}

var defaultCatalog = NewCatalog(wmoCategories...)

// Default returns the built-in WMO catalog.
func Default() *Catalog {
	return defaultCatalog
}
