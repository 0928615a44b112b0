package menu

import (
	"errors"
	"fmt"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrFoodCategoryIsNotConstructed     = errors.New("FoodCategory must be created via NewFoodCategory constructor")
	ErrBeverageCategoryIsNotConstructed = errors.New("BeverageCategory must be created via NewBeverageCategory constructor")
)

// Category is the closed set of menu categories. The unexported marker method
// keeps the set limited to FoodCategory and BeverageCategory; use
// MatchCategory to branch on the concrete variant.
type Category interface {
	ID() int64
	Name() string
	Kind() CategoryKind
	Validate() error

	isCategory()
}

// CategoryKind names the category variant for storage and transport.
type CategoryKind int

const (
	// UnknownKind is the zero value and never a valid kind.
	UnknownKind CategoryKind = iota
	// Food marks a FoodCategory.
	Food
	// Beverage marks a BeverageCategory.
	Beverage
)

func (k CategoryKind) String() string {
	switch k {
	case Food:
		return "food"
	case Beverage:
		return "beverage"
	default:
		return "unknown"
	}
}

// ParseCategoryKind converts the string form produced by String back into a kind.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch s {
	case "food":
		return Food, nil
	case "beverage":
		return Beverage, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"category kind",
			fmt.Errorf("%q is not one of food, beverage", s),
		)
	}
}

// FoodCategory groups dishes; it records whether the dishes are vegan friendly.
type FoodCategory struct {
	id            int64
	name          string
	veganFriendly bool

	guard guard.ConstructorGuard
}

// NewFoodCategory validates and creates a food category.
func NewFoodCategory(id int64, name string, veganFriendly bool) (FoodCategory, error) {
	if err := errors.Join(
		kernel.ValidateID("food category id", id),
		kernel.ValidateName("food category name", name),
	); err != nil {
		return FoodCategory{}, err
	}

	return FoodCategory{
		id:            id,
		name:          name,
		veganFriendly: veganFriendly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c FoodCategory) ID() int64 {
	return c.id
}

func (c FoodCategory) Name() string {
	return c.name
}

func (c FoodCategory) Kind() CategoryKind {
	return Food
}

// IsVeganFriendly reports whether the dishes of the category are vegan friendly.
func (c FoodCategory) IsVeganFriendly() bool {
	return c.veganFriendly
}

func (c FoodCategory) Validate() error {
	return c.guard.Validate(ErrFoodCategoryIsNotConstructed)
}

func (FoodCategory) isCategory() {}

// BeverageCategory groups drinks; it records whether the drinks contain alcohol.
type BeverageCategory struct {
	id         int64
	name       string
	hasAlcohol bool

	guard guard.ConstructorGuard
}

// NewBeverageCategory validates and creates a beverage category.
func NewBeverageCategory(id int64, name string, hasAlcohol bool) (BeverageCategory, error) {
	if err := errors.Join(
		kernel.ValidateID("beverage category id", id),
		kernel.ValidateName("beverage category name", name),
	); err != nil {
		return BeverageCategory{}, err
	}

	return BeverageCategory{
		id:         id,
		name:       name,
		hasAlcohol: hasAlcohol,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c BeverageCategory) ID() int64 {
	return c.id
}

func (c BeverageCategory) Name() string {
	return c.name
}

func (c BeverageCategory) Kind() CategoryKind {
	return Beverage
}

// HasAlcohol reports whether the drinks of the category contain alcohol.
func (c BeverageCategory) HasAlcohol() bool {
	return c.hasAlcohol
}

func (c BeverageCategory) Validate() error {
	return c.guard.Validate(ErrBeverageCategoryIsNotConstructed)
}

func (BeverageCategory) isCategory() {}

// NewCategory rebuilds a category from its kind and attributes. flag is the
// vegan-friendly flag for Food and the alcohol flag for Beverage.
func NewCategory(kind CategoryKind, id int64, name string, flag bool) (Category, error) {
	switch kind {
	case Food:
		return NewFoodCategory(id, name, flag)
	case Beverage:
		return NewBeverageCategory(id, name, flag)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"category kind",
			fmt.Errorf("%d is not a valid category kind", kind),
		)
	}
}

// MatchCategory calls food or beverage depending on the variant of c. Both
// handlers are mandatory, so adding a variant breaks every call site at
// compile time. A nil category, or a pointer to a variant, is rejected.
func MatchCategory[T any](
	c Category,
	food func(FoodCategory) T,
	beverage func(BeverageCategory) T,
) (T, error) {
	var zero T

	switch v := c.(type) {
	case FoodCategory:
		return food(v), nil
	case BeverageCategory:
		return beverage(v), nil
	case nil:
		return zero, errs.NewValueIsRequiredError("category")
	default:
		return zero, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%T is not a category variant", c))
	}
}

// CategoryFlag returns the variant specific flag: vegan friendly for food,
// alcohol for beverages.
func CategoryFlag(c Category) (bool, error) {
	return MatchCategory(c,
		FoodCategory.IsVeganFriendly,
		BeverageCategory.HasAlcohol,
	)
}

// SameCategory reports whether two categories are the same variant with the
// same attributes.
func SameCategory(a, b Category) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
