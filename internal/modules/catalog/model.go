// README: City and category catalog served next to recommendations.
package catalog

import "tripbud/internal/types"

type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Category struct {
	ID   types.Category `json:"id"`
	Name string         `json:"name"`
	Icon string         `json:"icon"`
}

// defaultCities is served when no database is configured or it cannot be read.
var defaultCities = []City{
	{Name: "Paris", Country: "France"},
	{Name: "Tokyo", Country: "Japan"},
	{Name: "New York", Country: "USA"},
	{Name: "Barcelona", Country: "Spain"},
	{Name: "Bangkok", Country: "Thailand"},
	{Name: "Istanbul", Country: "Turkey"},
	{Name: "London", Country: "UK"},
	{Name: "Rome", Country: "Italy"},
}
