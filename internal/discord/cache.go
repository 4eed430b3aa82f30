package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	nameCacheSize = 512
	nameCacheTTL  = 15 * time.Minute
)

// nameCache memoizes Discord user ID to display-name lookups so
// leaderboard rendering doesn't hammer the Discord REST API.
type nameCache struct {
	lru *expirable.LRU[string, string]
}

func newNameCache() *nameCache {
	return &nameCache{
		lru: expirable.NewLRU[string, string](nameCacheSize, nil, nameCacheTTL),
	}
}

// DisplayName resolves a user ID to a display name, caching the result.
// Falls back to the raw ID when the lookup fails.
func (c *nameCache) DisplayName(s *discordgo.Session, userID string) string {
	if name, ok := c.lru.Get(userID); ok {
		return name
	}

	u, err := s.User(userID)
	if err != nil {
		return userID
	}

	name := u.Username
	if u.GlobalName != "" {
		name = u.GlobalName
	}
	c.lru.Add(userID, name)
	return name
}

// Invalidate removes a cached name.
func (c *nameCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
