package interview

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// RegenerateFunc asks the provider for needed additional questions distinct
// from existing. It is invoked at most once per EnsureCount call.
type RegenerateFunc func(ctx context.Context, needed int, existing []string) ([]string, error)

// EnsureCount makes the question list exactly target entries long. Overruns
// are truncated in order. Shortfalls trigger a single regeneration round-trip
// and then padding from the persona's static bank; only when both the
// provider and the bank are exhausted may the result come back short.
func EnsureCount(ctx context.Context, questions []string, target int, regenerate RegenerateFunc, bank []string) []string {
	if len(questions) >= target {
		return questions[:target:target]
	}

	have := make([]string, len(questions), target)
	copy(have, questions)

	if regenerate != nil {
		needed := target - len(have)
		ctxzap.Info(ctx, "question batch short, requesting top-up",
			zap.Int("have", len(have)), zap.Int("needed", needed))

		extra, err := regenerate(ctx, needed, have)
		if err != nil {
			ctxzap.Warn(ctx, "question top-up failed", zap.Error(err))
		} else {
			have = appendDistinct(have, extra, target)
		}
		if len(have) >= target {
			return have[:target:target]
		}
	}

	short := len(have)
	have = appendDistinct(have, bank, target)
	if len(have) < target {
		// Double exhaustion: provider and bank together could not reach the
		// target. Callers receive the shorter list rather than an error.
		ctxzap.Warn(ctx, "fallback bank exhausted below target",
			zap.Int("target", target), zap.Int("got", len(have)))
	} else {
		ctxzap.Info(ctx, "padded questions from fallback bank",
			zap.Int("from_bank", len(have)-short))
	}
	return have
}

// appendDistinct appends candidates not already present, stopping at target.
// Duplicates are detected by exact string match.
func appendDistinct(have []string, candidates []string, target int) []string {
	seen := make(map[string]struct{}, len(have))
	for _, q := range have {
		seen[q] = struct{}{}
	}
	for _, q := range candidates {
		if len(have) >= target {
			break
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		have = append(have, q)
	}
	return have
}
