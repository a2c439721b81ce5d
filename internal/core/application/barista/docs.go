// Package barista implements the workers that drive orders through their
// lifecycle: claim the next dispatchable order, report it started, simulate
// preparation, run the pour through the pour service and report the outcome.
//
// A claimed order is always resolved to exactly one terminal report. The happy
// path reports Completed; stopping the worker at any suspension point, or
// losing the pour to a closed pool, reports Canceled instead, which sends the
// order back to the dispatchable set.
package barista
