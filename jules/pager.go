package jules

import (
	"context"
	"iter"
)

// pageFetch fetches one page: given a continuation token it returns the
// page's items and the next token, empty when the listing is exhausted.
type pageFetch[T any] func(ctx context.Context, pageToken string) ([]T, string, error)

// collectPages drives fetch until the continuation token comes back
// empty, accumulating items in page order. A failure on any page aborts
// the whole listing; no partial results are returned.
func collectPages[T any](ctx context.Context, fetch pageFetch[T]) ([]T, error) {
	var all []T

	token := ""

	for {
		items, next, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if next == "" {
			return all, nil
		}

		token = next
	}
}

// iterPages returns an iterator over all items of a listing. Pages are
// fetched lazily and strictly sequentially as the iterator advances; a
// fetch failure yields a zero item with the error and ends the sequence.
// Each range over the sequence starts a fresh traversal from the first
// page.
func iterPages[T any](ctx context.Context, fetch pageFetch[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		token := ""

		for {
			items, next, err := fetch(ctx, token)
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if next == "" {
				return
			}

			token = next
		}
	}
}
