package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/pagination"
	"yatube/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Feed is one page of a post listing plus the window metadata the client
// needs to render pagination controls.
type Feed struct {
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"pagination"`
}

// FeedService assembles the four post listings. All of them order posts
// newest first and share the same page size.
type FeedService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
	users  repository.UserRepository
}

func NewFeedService(posts repository.PostRepository, groups repository.GroupRepository, users repository.UserRepository) *FeedService {
	return &FeedService{posts: posts, groups: groups, users: users}
}

type listFn func(ctx context.Context, limit, offset int) ([]*models.Post, int64, error)

// paginate fetches the requested window, then re-fetches once if clamping
// moved the page number (an out-of-range request serves the last page
// rather than an empty one).
func (s *FeedService) paginate(ctx context.Context, requested int, list listFn) (*Feed, error) {
	size := pagination.DefaultPageSize
	if requested < 1 {
		requested = 1
	}
	offset := (requested - 1) * size

	posts, total, err := list(ctx, size, offset)
	if err != nil {
		return nil, err
	}

	page := pagination.New(total, requested, size)
	if page.Offset() != offset {
		posts, _, err = list(ctx, page.Limit(), page.Offset())
		if err != nil {
			return nil, err
		}
	}

	return &Feed{Posts: posts, Page: page}, nil
}

// HomeFeed lists every post. The first page is served through the cache;
// deeper pages always hit the database.
func (s *FeedService) HomeFeed(ctx context.Context, requestedPage int) (*Feed, error) {
	span, ctx := observability.NewSpan(ctx, "feed.home")
	defer span.End()
	span.AddAttributes(attribute.Int("feed.page", requestedPage))

	if requestedPage > 1 {
		return s.paginate(ctx, requestedPage, s.posts.List)
	}

	var feed Feed
	err := cache.Aside(ctx, cache.HomeFeedKey, &feed, cache.HomeFeedTTL, func() error {
		fresh, err := s.paginate(ctx, 1, s.posts.List)
		if err != nil {
			return err
		}
		feed = *fresh
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return &feed, nil
}

// GroupFeed lists the posts of one group, resolved by slug.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, requestedPage int) (*models.Group, *Feed, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	feed, err := s.paginate(ctx, requestedPage, func(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
		return s.posts.ListByGroup(ctx, group.ID, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return group, feed, nil
}

// ProfileFeed lists the posts of one author, resolved by username.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, requestedPage int) (*models.User, *Feed, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	feed, err := s.paginate(ctx, requestedPage, func(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
		return s.posts.ListByAuthor(ctx, author.ID, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return author, feed, nil
}

// FollowFeed lists posts by the authors the viewer follows. A viewer who
// follows nobody gets an empty first page.
func (s *FeedService) FollowFeed(ctx context.Context, viewerID uint, requestedPage int) (*Feed, error) {
	return s.paginate(ctx, requestedPage, func(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
		return s.posts.ListFollowed(ctx, viewerID, limit, offset)
	})
}
