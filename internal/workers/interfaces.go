// Package workers provides background workers running alongside the
// interactive client: currently a periodic report refresh that keeps the
// local cache warm while the TUI is open.
package workers

// Worker is the interface implemented by every background worker.
//
// Run starts the worker and is expected to spawn its goroutine internally
// and return immediately; cancellation happens through the context the
// worker was built with.
type Worker interface {
	Run()
}
