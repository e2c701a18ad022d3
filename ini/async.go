// File: async.go
// Title: Asynchronous Parse Entry Point
// Description: Implements the optional background parse: the whole lex and
//              tree build runs on its own goroutine and the caller blocks
//              on the returned handle for the result. There is no
//              cancellation, timeout, or partial delivery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package ini

// AsyncResult is the handle to a parse running in the background
type AsyncResult struct {
	done chan struct{}
	doc  *Document
	err  error
}

// ParseAsync runs the entire parse (tokenization and tree build) on an
// independently scheduled goroutine. Errors raised during background
// execution are captured and returned from Wait, never dropped.
func (p *Parser) ParseAsync(src Source) *AsyncResult {
	result := &AsyncResult{done: make(chan struct{})}

	go func() {
		defer close(result.done)
		result.doc, result.err = p.Parse(src)
	}()

	return result
}

// ParseFileAsync runs ParseFile on an independently scheduled goroutine
func (p *Parser) ParseFileAsync(path string) *AsyncResult {
	result := &AsyncResult{done: make(chan struct{})}

	go func() {
		defer close(result.done)
		result.doc, result.err = p.ParseFile(path)
	}()

	return result
}

// Wait blocks until the background parse has completed and returns its
// outcome. Wait may be called multiple times; every call returns the same
// result.
func (r *AsyncResult) Wait() (*Document, error) {
	<-r.done
	return r.doc, r.err
}

// Done returns a channel that is closed when the parse has completed
func (r *AsyncResult) Done() <-chan struct{} {
	return r.done
}
