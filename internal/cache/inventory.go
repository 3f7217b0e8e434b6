package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix  = "user:%d"
	PostKeyPrefix  = "post:%d"
	GroupKeyPrefix = "group:%s"

	// HomeFeedKey is the single global cache entry for the first page of the
	// home feed. It is intentionally not keyed per user.
	HomeFeedKey = "feed:home:page1"
)

const (
	UserTTL  = 5 * time.Minute
	PostTTL  = 30 * time.Minute
	GroupTTL = 10 * time.Minute
)

// HomeFeedTTL is the staleness bound for the cached home feed. Bootstrap
// overrides it from FEED_CACHE_TTL_SECONDS; the default matches the original
// page cache lifetime.
var HomeFeedTTL = 20 * time.Second

// SetHomeFeedTTL installs the configured home feed staleness bound.
func SetHomeFeedTTL(d time.Duration) {
	if d > 0 {
		HomeFeedTTL = d
	}
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}

// InvalidateHomeFeed drops the cached home feed. Post writes call this so the
// TTL is only an upper bound on staleness, not the sole invalidation path.
func InvalidateHomeFeed(ctx context.Context) {
	Invalidate(ctx, HomeFeedKey)
}
