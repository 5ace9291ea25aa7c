package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindowStore(t *testing.T) *WindowStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWindowStore(client)
}

func TestWindowStore_CountsAccumulate(t *testing.T) {
	store := newTestWindowStore(t)
	ctx := context.Background()
	window := 10 * time.Minute

	var counts *ports.WindowCounts
	for i := 0; i < 3; i++ {
		var err error
		counts, err = recordOTPRequest(ctx, store, "subj-1", "10.0.0.1", window)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(3), counts.SubjectCount)
	assert.Equal(t, int64(3), counts.IPCount)
	assert.Equal(t, int64(3), counts.PairCount)
	assert.Equal(t, int64(1), counts.DistinctIPs)
	assert.Equal(t, int64(1), counts.DistinctSubjects)
}

func TestWindowStore_DistinctIPsPerSubject(t *testing.T) {
	store := newTestWindowStore(t)
	ctx := context.Background()
	window := 10 * time.Minute

	for i := 0; i < 4; i++ {
		ip := fmt.Sprintf("10.0.0.%d", i+1)
		counts, err := recordOTPRequest(ctx, store, "subj-1", ip, window)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), counts.DistinctIPs)
		assert.Equal(t, int64(1), counts.PairCount, "each pair is new")
	}
}

func TestWindowStore_DistinctSubjectsPerIP(t *testing.T) {
	store := newTestWindowStore(t)
	ctx := context.Background()
	window := 10 * time.Minute

	for i := 0; i < 4; i++ {
		subject := fmt.Sprintf("subj-%d", i+1)
		counts, err := recordOTPRequest(ctx, store, subject, "10.0.0.1", window)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), counts.DistinctSubjects)
	}
}

func TestWindowStore_EventTypesAreIsolated(t *testing.T) {
	store := newTestWindowStore(t)
	ctx := context.Background()
	window := 10 * time.Minute

	_, err := store.RecordEvent(ctx, domain.SecurityEventOTPRequest, "subj-1", "10.0.0.1", window)
	require.NoError(t, err)

	counts, err := store.RecordEvent(ctx, domain.SecurityEventVerifyFailure, "subj-1", "10.0.0.1", window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.SubjectCount, "failure window must not see request events")
}

func TestWindowStore_OldEntriesSlideOut(t *testing.T) {
	store := newTestWindowStore(t)
	ctx := context.Background()
	window := 10 * time.Minute

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	for i := 0; i < 5; i++ {
		_, err := recordOTPRequest(ctx, store, "subj-1", "10.0.0.1", window)
		require.NoError(t, err)
	}

	// Past the window, old entries no longer count
	store.now = func() time.Time { return base.Add(window + time.Second) }
	counts, err := recordOTPRequest(ctx, store, "subj-1", "10.0.0.1", window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.SubjectCount)
	assert.Equal(t, int64(1), counts.PairCount)
}

// recordOTPRequest keeps the call sites short.
func recordOTPRequest(ctx context.Context, store *WindowStore, subject, ip string, window time.Duration) (*ports.WindowCounts, error) {
	return store.RecordEvent(ctx, domain.SecurityEventOTPRequest, subject, ip, window)
}
