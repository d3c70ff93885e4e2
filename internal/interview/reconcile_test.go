package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureCountTruncatesOverrun(t *testing.T) {
	have := []string{"q1?", "q2?", "q3?", "q4?"}
	got := EnsureCount(context.Background(), have, 2, nil, nil)
	assert.Equal(t, []string{"q1?", "q2?"}, got)
}

func TestEnsureCountExactMatchUntouched(t *testing.T) {
	have := []string{"q1?", "q2?"}
	called := false
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		called = true
		return nil, nil
	}
	got := EnsureCount(context.Background(), have, 2, regen, []string{"bank?"})
	assert.Equal(t, have, got)
	assert.False(t, called, "regeneration must not run when count already matches")
}

func TestEnsureCountSingleTopUp(t *testing.T) {
	have := []string{"q1?", "q2?", "q3?"}
	calls := 0
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		calls++
		assert.Equal(t, 2, needed)
		assert.Equal(t, have, existing)
		return []string{"q4?", "q5?"}, nil
	}

	got := EnsureCount(context.Background(), have, 5, regen, nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"q1?", "q2?", "q3?", "q4?", "q5?"}, got)
}

func TestEnsureCountTopUpOverrunTruncated(t *testing.T) {
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		return []string{"q2?", "q3?", "q4?", "q5?"}, nil
	}
	got := EnsureCount(context.Background(), []string{"q1?"}, 3, regen, nil)
	assert.Equal(t, []string{"q1?", "q2?", "q3?"}, got)
}

func TestEnsureCountFallbackAfterFailedTopUp(t *testing.T) {
	calls := 0
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		calls++
		return nil, errors.New("provider down")
	}
	bank := []string{"b1?", "b2?", "b3?"}

	got := EnsureCount(context.Background(), []string{"q1?"}, 3, regen, bank)

	assert.Equal(t, 1, calls, "at most one regeneration attempt")
	assert.Equal(t, []string{"q1?", "b1?", "b2?"}, got)
}

func TestEnsureCountFallbackSkipsDuplicates(t *testing.T) {
	bank := []string{"q1?", "b1?", "b2?"}
	got := EnsureCount(context.Background(), []string{"q1?"}, 3, nil, bank)
	assert.Equal(t, []string{"q1?", "b1?", "b2?"}, got)
}

func TestEnsureCountDoubleExhaustionReturnsShort(t *testing.T) {
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		return []string{"q2?"}, nil
	}
	bank := []string{"b1?"}

	got := EnsureCount(context.Background(), []string{"q1?"}, 5, regen, bank)

	assert.Equal(t, []string{"q1?", "q2?", "b1?"}, got)
	assert.Less(t, len(got), 5, "double exhaustion is the only case allowed to come back short")
}

func TestEnsureCountPreservesOriginalOrder(t *testing.T) {
	regen := func(ctx context.Context, needed int, existing []string) ([]string, error) {
		return []string{"x?", "y?"}, nil
	}
	got := EnsureCount(context.Background(), []string{"q1?", "q2?", "q3?"}, 5, regen, nil)
	assert.Equal(t, []string{"q1?", "q2?", "q3?"}, got[:3])
}
