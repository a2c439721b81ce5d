package menu

import (
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when attempting to use an improperly
// initialized MenuItem. Items must be created via NewMenuItem or one of the
// catalog helpers.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError(
	"menu item must be created via NewMenuItem constructor")

// Kind identifies one of the closed set of menu item variants.
type Kind int

const (
	// KindUnknown represents an invalid or undefined item kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindCoffee is a brewed coffee.
	KindCoffee

	// KindTea is a brewed tea.
	KindTea

	// KindWater is a glass of water.
	KindWater

	// KindJuice is a pressed juice.
	KindJuice

	// KindBagel is a toasted bagel.
	KindBagel

	// KindBurger is a grilled burger.
	KindBurger

	// KindBiscuit is a baked biscuit.
	KindBiscuit

	// KindMacaron is a macaron.
	KindMacaron

	// KindBacon is a side of bacon.
	KindBacon
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindCoffee:  "Coffee",
		KindTea:     "Tea",
		KindWater:   "Water",
		KindJuice:   "Juice",
		KindBagel:   "Bagel",
		KindBurger:  "Burger",
		KindBiscuit: "Biscuit",
		KindMacaron: "Macaron",
		KindBacon:   "Bacon",
	}
}

// getPrepTimeBounds returns the preparation time bounds per valid kind.
// Bounds are simulation knobs for the demo shop, not real kitchen timings.
func getPrepTimeBounds() map[Kind][2]time.Duration {
	return map[Kind][2]time.Duration{
		KindCoffee:  {4 * time.Second, 10 * time.Second},
		KindTea:     {3 * time.Second, 8 * time.Second},
		KindWater:   {500 * time.Millisecond, 2 * time.Second},
		KindJuice:   {2 * time.Second, 5 * time.Second},
		KindBagel:   {3 * time.Second, 6 * time.Second},
		KindBurger:  {6 * time.Second, 12 * time.Second},
		KindBiscuit: {1 * time.Second, 3 * time.Second},
		KindMacaron: {1 * time.Second, 2 * time.Second},
		KindBacon:   {4 * time.Second, 8 * time.Second},
	}
}

// Validate checks if the Kind value is one of the closed variant set.
//
// Returns:
//   - nil if the kind is valid
//   - error with details if the kind is invalid
func (k Kind) Validate() error {
	if _, ok := getPrepTimeBounds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid menu item kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Returns "Unknown" for invalid kind values.
// This method implements the fmt.Stringer interface.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind from its string name, case-sensitively.
// Used when accepting item names from external callers such as the HTTP adapter.
//
// Returns:
//   - Kind: The parsed kind on success
//   - error: ValueIsInvalidError if the name does not match any variant
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid menu item name", s))
}

// MenuItem is an immutable value object pairing a variant kind with its
// preparation time range. The rest of the domain reads only the prep time;
// the kind is carried for display and logging.
//
// The zero value of MenuItem is invalid and will fail validation - use
// NewMenuItem or a catalog helper to create instances.
type MenuItem struct { //nolint:recvcheck //using for validation
	kind     Kind
	prepTime kernel.TimeRange
	guard    guard.ConstructorGuard
}

// NewMenuItem creates a MenuItem for the given kind with its catalog
// preparation time range.
//
// Returns:
//   - MenuItem: The created item if the kind is valid
//   - error: ValueIsInvalidError for unknown kinds
func NewMenuItem(kind Kind) (MenuItem, error) {
	bounds, ok := getPrepTimeBounds()[kind]
	if !ok {
		return MenuItem{}, kind.Validate()
	}

	prepTime, err := kernel.NewTimeRange(bounds[0], bounds[1])
	if err != nil {
		return MenuItem{}, err
	}

	return MenuItem{
		kind:     kind,
		prepTime: prepTime,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Catalog returns one MenuItem per valid variant, in a stable order.
// Useful for demo feeds and menu listings.
func Catalog() []MenuItem {
	kinds := []Kind{
		KindCoffee, KindTea, KindWater, KindJuice, KindBagel,
		KindBurger, KindBiscuit, KindMacaron, KindBacon,
	}

	items := make([]MenuItem, 0, len(kinds))
	for _, kind := range kinds {
		item, err := NewMenuItem(kind)
		if err != nil {
			// Catalog kinds are valid by construction.
			continue
		}
		items = append(items, item)
	}
	return items
}

// Kind returns the item's variant kind.
func (m MenuItem) Kind() Kind {
	return m.kind
}

// PrepTime returns the preparation time range used to derive randomized
// prep delays for this item.
func (m MenuItem) PrepTime() kernel.TimeRange {
	return m.prepTime
}

// IsEqual compares two items by kind.
func (m MenuItem) IsEqual(other MenuItem) bool {
	return m.kind == other.kind
}

// String returns the human-readable item name.
func (m MenuItem) String() string {
	return m.kind.String()
}

// Validate checks that the MenuItem was created through its constructor.
// Returns ErrMenuItemIsNotConstructed for zero-value items.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}
