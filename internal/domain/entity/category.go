// Package entity defines the core business entities for the domain layer.
package entity

// StandardCategory is one of the fixed spending categories.
type StandardCategory string

const (
	CategoryFood          StandardCategory = "Food"
	CategoryShopping      StandardCategory = "Shopping"
	CategoryTravel        StandardCategory = "Travel"
	CategoryHealth        StandardCategory = "Health"
	CategoryEntertainment StandardCategory = "Entertainment"
	CategoryBills         StandardCategory = "Bills"
	CategoryIncome        StandardCategory = "Income"
	CategoryOther         StandardCategory = "Other"
)

// StandardCategories lists the fixed category set in display order.
var StandardCategories = []StandardCategory{
	CategoryFood,
	CategoryShopping,
	CategoryTravel,
	CategoryHealth,
	CategoryEntertainment,
	CategoryBills,
	CategoryIncome,
	CategoryOther,
}

// Category is a spending category: either a member of the closed standard
// set, or a user-defined label. Exactly one of Standard/Custom is set.
type Category struct {
	Standard StandardCategory
	Custom   string
}

// ParseCategory maps a raw label onto the standard set when it matches one
// of the fixed categories, and carries it as a custom label otherwise.
func ParseCategory(label string) Category {
	for _, c := range StandardCategories {
		if string(c) == label {
			return Category{Standard: c}
		}
	}
	return Category{Custom: label}
}

// IsCustom reports whether the category is a user-defined label.
func (c Category) IsCustom() bool {
	return c.Standard == ""
}

// String returns the display label of the category.
func (c Category) String() string {
	if c.IsCustom() {
		return c.Custom
	}
	return string(c.Standard)
}

// Equals compares two categories by label.
func (c Category) Equals(other Category) bool {
	return c.String() == other.String()
}
