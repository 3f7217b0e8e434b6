package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// Profile is the public view of a user together with their counters and,
// when a viewer is signed in, whether that viewer follows them.
type Profile struct {
	User       *models.User `json:"user"`
	PostsCount int64        `json:"posts_count"`
	Followers  int64        `json:"followers_count"`
	Following  int64        `json:"following_count"`
	Followed   bool         `json:"following"`
}

type FollowService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
	posts   repository.PostRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, posts repository.PostRepository) *FollowService {
	return &FollowService{follows: follows, users: users, posts: posts}
}

// Follow subscribes the viewer to the named author. Following yourself or
// someone you already follow is a silent no-op.
func (s *FollowService) Follow(ctx context.Context, viewerID uint, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == viewerID {
		return nil
	}
	return s.follows.Follow(ctx, viewerID, author.ID)
}

// Unfollow removes the subscription if it exists.
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.follows.Unfollow(ctx, viewerID, author.ID)
}

// GetProfile resolves a username into the profile page payload. viewerID
// may be zero for anonymous viewers, in which case Followed is false.
func (s *FollowService) GetProfile(ctx context.Context, username string, viewerID uint) (*Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	_, postsCount, err := s.posts.ListByAuthor(ctx, user.ID, 1, 0)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	followed := false
	if viewerID != 0 && viewerID != user.ID {
		followed, err = s.follows.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:       user,
		PostsCount: postsCount,
		Followers:  followers,
		Following:  following,
		Followed:   followed,
	}, nil
}
