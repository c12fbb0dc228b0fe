package embedgo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/embedgo/internal/queue"
)

// Match is a ranked candidate: its position in the candidate slice and its
// cosine similarity score, clamped to [-1, 1].
type Match struct {
	Index int
	Score float64
}

// Ranker performs exact top-k ranking of candidate embeddings by cosine
// similarity. The scan is exhaustive (every candidate is scored), partitioned
// across worker goroutines.
//
// A Ranker is immutable after construction and safe for concurrent use.
type Ranker struct {
	parallelism int
	logger      *Logger
}

// NewRanker creates a Ranker configured by opts.
func NewRanker(opts ...Option) *Ranker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Ranker{
		parallelism: o.parallelism,
		logger:      o.logger,
	}
}

// TopK returns the k candidates most similar to query, ordered by descending
// score with ties broken by ascending index. Fewer than k matches are
// returned when len(candidates) < k.
//
// k < 1 fails with ErrInvalidK. A candidate whose dimension differs from the
// query fails the whole call with ErrDimensionMismatch, wrapped with the
// candidate's index.
func (r *Ranker) TopK(ctx context.Context, query *Embedding, candidates []*Embedding, k int) ([]Match, error) {
	matches, err := r.topK(ctx, query, candidates, k)
	r.logger.LogRank(ctx, k, len(candidates), err)

	return matches, err
}

func (r *Ranker) topK(ctx context.Context, query *Embedding, candidates []*Embedding, k int) ([]Match, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	workers := r.parallelism
	if workers > len(candidates) {
		workers = len(candidates)
	}
	chunk := (len(candidates) + workers - 1) / workers

	var mu sync.Mutex
	var merged []Match

	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(candidates); start += chunk {
		start := start
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Per-worker min-heap of size k: the top is the weakest match
			// kept so far, evicted whenever a better score arrives.
			pq := queue.NewMin(k)
			for i, c := range candidates[start:end] {
				score, err := query.CosineSimilarity(c)
				if err != nil {
					return fmt.Errorf("candidate %d: %w", start+i, err)
				}

				if pq.Len() < k {
					pq.PushItem(queue.Item{Index: start + i, Score: score})
					continue
				}
				if top, _ := pq.TopItem(); score > top.Score {
					pq.PopItem()
					pq.PushItem(queue.Item{Index: start + i, Score: score})
				}
			}

			local := make([]Match, 0, pq.Len())
			for pq.Len() > 0 {
				item, _ := pq.PopItem()
				local = append(local, Match{Index: item.Index, Score: item.Score})
			}

			mu.Lock()
			merged = append(merged, local...)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].Index < merged[j].Index
	})

	if len(merged) > k {
		merged = merged[:k]
	}

	return merged, nil
}
