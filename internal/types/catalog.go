package types

// Interest is one selectable tag on the form.
type Interest struct {
	ID    string
	Label string
	Icon  string
}

// Interests is the fixed, ordered interest catalog.
var Interests = []Interest{
	{ID: "food", Label: "Food & Dining", Icon: "🍽️"},
	{ID: "culture", Label: "Culture & Museums", Icon: "🏛️"},
	{ID: "nature", Label: "Nature & Outdoors", Icon: "🌳"},
	{ID: "nightlife", Label: "Nightlife", Icon: "🌙"},
	{ID: "shopping", Label: "Shopping", Icon: "🛍️"},
	{ID: "adventure", Label: "Adventure & Activities", Icon: "🎯"},
}

// IsInterest reports whether id belongs to the catalog.
func IsInterest(id string) bool {
	for _, in := range Interests {
		if in.ID == id {
			return true
		}
	}
	return false
}

// Category is the kind of a recommended item.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryCulture   Category = "culture"
	CategoryActivity  Category = "activity"
	CategoryNature    Category = "nature"
	CategoryNightlife Category = "nightlife"
	CategoryShopping  Category = "shopping"
)

// Categories lists the known categories with their display names.
var Categories = []struct {
	ID   Category
	Name string
}{
	{CategoryFood, "Food & Dining"},
	{CategoryCulture, "Culture & Museums"},
	{CategoryActivity, "Activities"},
	{CategoryNature, "Nature & Outdoors"},
	{CategoryNightlife, "Nightlife"},
	{CategoryShopping, "Shopping"},
}

// DefaultMarker is shown for categories the server invents.
const DefaultMarker = "📍"

// Marker maps a category to its display marker.
func (c Category) Marker() string {
	switch c {
	case CategoryFood:
		return "🍽️"
	case CategoryCulture:
		return "🏛️"
	case CategoryActivity:
		return "🎯"
	case CategoryNature:
		return "🌳"
	case CategoryNightlife:
		return "🌙"
	case CategoryShopping:
		return "🛍️"
	default:
		return DefaultMarker
	}
}

// Option is a value/label pair for a select input.
type Option[T comparable] struct {
	Value T
	Label string
}

// DefaultDuration is the preselected trip length in days.
const DefaultDuration = 3

// Durations are the selectable trip lengths.
var Durations = []Option[int]{
	{1, "1 day"},
	{2, "2 days"},
	{3, "3 days"},
	{4, "4 days"},
	{5, "5 days"},
	{7, "1 week"},
	{14, "2 weeks"},
}

// IsDuration reports whether days is one of the selectable durations.
func IsDuration(days int) bool {
	for _, d := range Durations {
		if d.Value == days {
			return true
		}
	}
	return false
}

type Budget string

const (
	BudgetLow    Budget = "budget"
	BudgetMedium Budget = "medium"
	BudgetLuxury Budget = "luxury"
)

var Budgets = []Option[Budget]{
	{BudgetLow, "Budget ($)"},
	{BudgetMedium, "Medium ($$)"},
	{BudgetLuxury, "Luxury ($$$)"},
}

func (b Budget) Valid() bool {
	switch b {
	case BudgetLow, BudgetMedium, BudgetLuxury:
		return true
	}
	return false
}

type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleBalanced TravelStyle = "balanced"
	StylePacked   TravelStyle = "packed"
)

var TravelStyles = []Option[TravelStyle]{
	{StyleRelaxed, "Relaxed & Leisurely"},
	{StyleBalanced, "Balanced"},
	{StylePacked, "Fast-Paced & Packed"},
}

func (s TravelStyle) Valid() bool {
	switch s {
	case StyleRelaxed, StyleBalanced, StylePacked:
		return true
	}
	return false
}
