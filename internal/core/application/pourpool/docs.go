// Package pourpool implements the shop's scarce pouring resource as a pool of
// independent pourer goroutines behind the ports.PourService contract.
//
// Each pourer owns a bounded FIFO request queue and serves it strictly one
// request at a time. Pour offers a request to every pourer simultaneously and
// commits to exactly one of them; a request is never duplicated across pourers
// and never silently dropped. Completion is signaled back through a one-shot
// channel per request.
//
// Close stops admissions, fails blocked and queued-but-unstarted requests with
// ErrPoolClosed, and waits for in-flight pours to finish before returning.
package pourpool
