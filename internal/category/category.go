// Package category holds the fixed registry of spending categories.
package category

// Category is a user-facing spending label.
type Category struct {
	ID    string
	Name  string
	Color string
	Icon  string
}

const (
	OtherID = "other"

	// Uncategorized is the category recorded for transactions without one.
	Uncategorized = "Uncategorized"

	FallbackIcon  = "📦"
	FallbackColor = "#6B7280"
)

var registry = []Category{
	{ID: "food", Name: "Food & Dining", Color: "#EF4444", Icon: "🍽️"},
	{ID: "transport", Name: "Transportation", Color: "#3B82F6", Icon: "🚗"},
	{ID: "shopping", Name: "Shopping", Color: "#8B5CF6", Icon: "🛍️"},
	{ID: "entertainment", Name: "Entertainment", Color: "#EC4899", Icon: "🎬"},
	{ID: "health", Name: "Healthcare", Color: "#10B981", Icon: "🏥"},
	{ID: "education", Name: "Education", Color: "#F59E0B", Icon: "📚"},
	{ID: "utilities", Name: "Utilities", Color: "#06B6D4", Icon: "⚡"},
	{ID: "housing", Name: "Housing", Color: "#84CC16", Icon: "🏠"},
	{ID: "travel", Name: "Travel", Color: "#F97316", Icon: "✈️"},
	{ID: OtherID, Name: "Other", Color: FallbackColor, Icon: FallbackIcon},
}

// All returns a copy of the registry in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

func ByID(id string) (Category, bool) {
	for _, c := range registry {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func ByName(name string) (Category, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Lookup resolves a transaction's category name for display. Names outside
// the registry keep their name but get the fallback icon and color.
func Lookup(name string) Category {
	if c, ok := ByName(name); ok {
		return c
	}
	return Category{Name: name, Color: FallbackColor, Icon: FallbackIcon}
}

// Other returns the fallback category.
func Other() Category {
	c, _ := ByID(OtherID)
	return c
}
