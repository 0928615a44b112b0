// Package menu provides the catalog value types of the restaurant: menu
// categories and menu items.
//
// The package includes:
//   - Category: a closed variant over FoodCategory and BeverageCategory
//   - MenuItem: an immutable, validated catalog entry
//
// Key business rules:
//   - Identifiers are non-negative
//   - Names must not be blank
//   - Prices must be strictly positive and finite
//   - Every menu item belongs to exactly one category
//
// Instances are obtained only through constructors; zero values fail Validate.
package menu
