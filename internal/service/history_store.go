package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"practice-recommender/internal/domain"
)

var ErrHistoryNotFound = errors.New("history not found")

// HistoryStore guarda los reportes generados por usuario, del mas nuevo al mas viejo.
type HistoryStore interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
}

type memoryHistoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	limit int
	items map[string][]memoryHistoryItem
}

type memoryHistoryItem struct {
	entry     domain.HistoryEntry
	expiresAt time.Time
}

func NewMemoryHistoryStore(ttl time.Duration, limit int) HistoryStore {
	if limit <= 0 {
		limit = 20
	}
	return &memoryHistoryStore{
		ttl:   ttl,
		limit: limit,
		items: make(map[string][]memoryHistoryItem),
	}
}

func (s *memoryHistoryStore) Append(_ context.Context, entry domain.HistoryEntry) error {
	userID := strings.TrimSpace(entry.UserID)
	if userID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	item := memoryHistoryItem{entry: entry}
	if s.ttl > 0 {
		item.expiresAt = time.Now().UTC().Add(s.ttl)
	}
	list := append([]memoryHistoryItem{item}, s.items[userID]...)
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	s.items[userID] = list
	return nil
}

func (s *memoryHistoryStore) List(_ context.Context, userID string) ([]domain.HistoryEntry, error) {
	userID = strings.TrimSpace(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	var out []domain.HistoryEntry
	kept := s.items[userID][:0]
	for _, item := range s.items[userID] {
		if !item.expiresAt.IsZero() && now.After(item.expiresAt) {
			continue
		}
		kept = append(kept, item)
		out = append(out, item.entry)
	}
	if len(kept) == 0 {
		delete(s.items, userID)
		return nil, ErrHistoryNotFound
	}
	s.items[userID] = kept
	return out, nil
}

// LPUSH + LTRIM + EXPIRE en un solo paso atomico.
const redisHistoryAppendScript = `
redis.call("LPUSH", KEYS[1], ARGV[1])
redis.call("LTRIM", KEYS[1], 0, tonumber(ARGV[2]) - 1)
if tonumber(ARGV[3]) > 0 then
  redis.call("EXPIRE", KEYS[1], ARGV[3])
end
return redis.call("LLEN", KEYS[1])
`

type redisHistoryClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

type redisHistoryStore struct {
	client redisHistoryClient
	ttl    time.Duration
	limit  int
	prefix string
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration, limit int) HistoryStore {
	if client == nil {
		return nil
	}
	if limit <= 0 {
		limit = 20
	}
	return &redisHistoryStore{
		client: client,
		ttl:    ttl,
		limit:  limit,
		prefix: "history:",
	}
}

func (s *redisHistoryStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	userID := strings.TrimSpace(entry.UserID)
	if userID == "" {
		return nil
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	seconds := int(s.ttl.Seconds())
	return s.client.Eval(ctx, redisHistoryAppendScript, []string{s.prefix + userID}, string(payload), s.limit, seconds).Err()
}

func (s *redisHistoryStore) List(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrHistoryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := s.client.LRange(ctx, s.prefix+userID, 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrHistoryNotFound
	}
	out := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
