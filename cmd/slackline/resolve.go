package main

import (
	"context"

	"github.com/sourcegraph/conc/iter"

	"github.com/co42/slackline/internal/slack"
)

// resolveNames maps user IDs to handles with bounded concurrency. One
// users.list page seeds the lookup; IDs missing from it are fetched one by
// one. A failed lookup keeps the raw ID. The result is index-aligned with ids.
func (a *app) resolveNames(ctx context.Context, c *slack.Client, ids []string) []string {
	index, err := c.UserDirectory(ctx, UserSearchPageSize)
	if err != nil {
		a.log.DebugContext(ctx, "user directory unavailable", "error", err)
	}
	cache := slack.NewUserCache()
	resolver := slack.NewUserResolver(index, cache, c)
	mapper := iter.Mapper[string, string]{MaxGoroutines: a.cfg.Concurrency}
	names := mapper.Map(ids, func(id *string) string {
		name, err := resolver.Username(ctx, *id)
		if err != nil {
			a.log.DebugContext(ctx, "name lookup failed", "user", *id, "error", err)
			return *id
		}
		return name
	})
	a.log.DebugContext(ctx, "resolved names", "ids", len(ids), "indexed", len(index), "fetched", cache.Len())
	return names
}
