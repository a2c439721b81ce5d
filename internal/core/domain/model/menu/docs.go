// Package menu provides the menu item catalog for the coffee shop system.
// It implements MenuItem as a closed set of variants (Coffee, Tea, Water, ...),
// each carrying a preparation time range used to derive randomized prep delays.
//
// The variant set is closed for the rest of the domain: the ledger and workers
// never branch on the item kind, they only read the prep time through the
// uniform PrepTime accessor. New variants are added by extending the catalog
// table without touching ledger or worker logic.
package menu
