// Package ledger provides the OrderScreen: the single-writer actor owning the
// authoritative order set.
//
// All state transitions funnel through one serialized event channel consumed
// by exactly one goroutine, so the apply path needs no locks - concurrency
// safety comes from funneling every mutation through a single consumer loop.
// Other components communicate with the ledger exclusively via asynchronous
// message passing: events in, dispatchable orders and board snapshots out.
//
// The ledger also feeds the dispatch stream: an unbuffered channel handing
// each Ordered order to exactly one worker, in arrival order. Canceled orders
// are reopened and re-enter the dispatch queue.
package ledger
