package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// WindowStore implements ports.SecurityWindowStore using Redis sorted sets.
// Every event lands in five sets scored by timestamp: per subject, per IP,
// per (subject, IP) pair, plus two distinct-member sets that answer "how many
// IPs touched this subject" and "how many subjects did this IP touch".
// Entries older than the window are trimmed on each recording.
type WindowStore struct {
	client *goredis.Client
	now    func() time.Time
}

// NewWindowStore creates a new Redis-backed sliding window store.
func NewWindowStore(client *goredis.Client) *WindowStore {
	return &WindowStore{
		client: client,
		now:    time.Now,
	}
}

// RecordEvent records one security event and returns the in-window tallies.
func (s *WindowStore) RecordEvent(ctx context.Context, event domain.SecurityEventType, subjectID, clientIP string, window time.Duration) (*ports.WindowCounts, error) {
	now := s.now()
	nowMillis := now.UnixMilli()
	cutoff := strconv.FormatInt(now.Add(-window).UnixMilli(), 10)

	subjectKey := fmt.Sprintf("sec:evt:%s:subj:%s", event, subjectID)
	ipKey := fmt.Sprintf("sec:evt:%s:ip:%s", event, clientIP)
	pairKey := fmt.Sprintf("sec:evt:%s:pair:%s:%s", event, subjectID, clientIP)
	ipsKey := fmt.Sprintf("sec:ips:%s:%s", event, subjectID)
	subjectsKey := fmt.Sprintf("sec:subjects:%s:%s", event, clientIP)

	// Event sets get a unique member per occurrence; the distinct sets use
	// the IP or subject itself as the member so ZCARD counts distinct values.
	member := uuid.NewString()

	pipe := s.client.TxPipeline()
	cards := make([]*goredis.IntCmd, 0, 5)
	record := func(key, member string) {
		pipe.ZRemRangeByScore(ctx, key, "-inf", cutoff)
		pipe.ZAdd(ctx, key, goredis.Z{Score: float64(nowMillis), Member: member})
		cards = append(cards, pipe.ZCard(ctx, key))
		pipe.PExpire(ctx, key, window)
	}
	record(subjectKey, member)
	record(ipKey, member)
	record(pairKey, member)
	record(ipsKey, clientIP)
	record(subjectsKey, subjectID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis window record: %w", err)
	}

	return &ports.WindowCounts{
		SubjectCount:     cards[0].Val(),
		IPCount:          cards[1].Val(),
		PairCount:        cards[2].Val(),
		DistinctIPs:      cards[3].Val(),
		DistinctSubjects: cards[4].Val(),
	}, nil
}
