package chunkers

import (
	"context"
	"fmt"
)

// ProgressFunc receives one notification per chunk, synchronously on the
// calling goroutine, immediately before that chunk is processed. Marshaling
// onto another goroutine (for UI updates) is the caller's responsibility.
type ProgressFunc func(message string)

// BatchResult records the outcome of processing a single chunk. Exactly one
// of Result and Err is meaningful, indicated by Success.
type BatchResult[T any] struct {
	Chunk   Chunk
	Result  T
	Err     error
	Success bool
}

// ProcessInBatches invokes fn once per chunk, in order, recording each
// outcome. A chunk's failure is isolated: it is recorded and processing
// continues with the next chunk. The boundary between chunks is the only
// cancellation point; when ctx is done the results accumulated so far are
// returned along with the context error, and no chunk is ever half
// processed.
func ProcessInBatches[T any](ctx context.Context, chunks []Chunk, fn func(context.Context, Chunk) (T, error), progress ProgressFunc) ([]BatchResult[T], error) {
	results := make([]BatchResult[T], 0, len(chunks))
	total := len(chunks)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if progress != nil {
			progress(fmt.Sprintf("Processing chunk %d/%d: %s", i+1, total, chunk.Header))
		}

		result, err := fn(ctx, chunk)
		if err != nil {
			if progress != nil {
				progress(fmt.Sprintf("  Error: %v", err))
			}
			results = append(results, BatchResult[T]{Chunk: chunk, Err: err})
			continue
		}

		results = append(results, BatchResult[T]{Chunk: chunk, Result: result, Success: true})
	}

	return results, nil
}
