package env

import (
	"github.com/tinywasm/fetch"
	"github.com/tinywasm/fmt"
)

// FetchSource downloads source over HTTP and returns the body of a 2xx
// response. It blocks until the response arrives, so in wasm it must not run
// on the event loop goroutine.
func FetchSource(source string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	fetch.Get(source).Send(func(resp *fetch.Response, err error) {
		switch {
		case err != nil:
			done <- result{err: fmt.Errf("error fetching %s: %v", source, err)}
		case resp.Status < 200 || resp.Status > 299:
			done <- result{err: fmt.Errf("error fetching %s: status %d", source, resp.Status)}
		default:
			done <- result{data: resp.Body()}
		}
	})

	r := <-done
	return r.data, r.err
}
