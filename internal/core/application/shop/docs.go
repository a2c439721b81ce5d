// Package shop ties the order screen, the pourer pool and the workers into a
// single lifecycle. Open puts the workers on shift, Order accepts business
// while the shop is open, Close shuts the pieces down in dependency order:
// workers first, then the pool, then the ledger, so every claimed order lands
// in a terminal report before the ledger stops applying events.
package shop
