package cart

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store keeps each user's cart as a redis hash of dish id → quantity.
// Entries have no expiry; the hash lives until the order workflow clears it.
type Store struct {
	Client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{Client: client}
}

// Key returns the hash key for a user's cart.
func Key(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Add increments the running quantity for a dish, creating the entry if
// absent. Dish existence is not checked at this layer.
func (s *Store) Add(ctx context.Context, userID, dishID uint, quantity int) error {
	return s.Client.HIncrBy(ctx, Key(userID), strconv.FormatUint(uint64(dishID), 10), int64(quantity)).Err()
}

// Get returns the full cart mapping as of the call, keyed by dish id.
func (s *Store) Get(ctx context.Context, userID uint) (map[string]int, error) {
	raw, err := s.Client.HGetAll(ctx, Key(userID)).Result()
	if err != nil {
		return nil, err
	}
	return ParseHash(raw)
}

// Clear deletes the user's entire cart hash.
func (s *Store) Clear(ctx context.Context, userID uint) error {
	return s.Client.Del(ctx, Key(userID)).Err()
}

// ParseHash converts the raw redis hash into dish id → quantity.
func ParseHash(raw map[string]string) (map[string]int, error) {
	out := make(map[string]int, len(raw))
	for dishID, qty := range raw {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart entry %q=%q: %w", dishID, qty, err)
		}
		out[dishID] = n
	}
	return out, nil
}
