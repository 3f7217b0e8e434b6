package service

import (
	"context"
	"strings"

	"yatube/internal/authz"
	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
)

const maxPostTextLen = 10000

// CreatePostInput carries the fields the post form exposes.
type CreatePostInput struct {
	UserID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// UpdatePostInput re-submits the full form: a nil GroupID clears the
// group, an empty ImageURL clears the image. Author and creation time
// are never touched.
type UpdatePostInput struct {
	Text     string
	GroupID  *uint
	ImageURL string
}

type PostService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
}

func NewPostService(posts repository.PostRepository, groups repository.GroupRepository) *PostService {
	return &PostService{posts: posts, groups: groups}
}

func (s *PostService) validateText(text string) *models.AppError {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Post text cannot be empty")
	}
	if len(text) > maxPostTextLen {
		return models.NewValidationError("Post text is too long")
	}
	return nil
}

// resolveGroup checks that a referenced group exists. A dangling group
// id is a form error, not a routing 404.
func (s *PostService) resolveGroup(ctx context.Context, groupID *uint) *models.AppError {
	if groupID == nil {
		return nil
	}
	if _, err := s.groups.GetByID(ctx, *groupID); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.NewValidationError("Unknown group")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}
	if err := s.resolveGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		UserID:   in.UserID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	grouped := "false"
	if post.GroupID != nil {
		grouped = "true"
	}
	observability.PostsCreated.WithLabelValues(grouped).Inc()

	return s.posts.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// UpdatePost replaces the form-exposed fields of the post. Callers who
// are not the author get an UNAUTHORIZED error and the stored post is
// left exactly as it was.
func (s *PostService) UpdatePost(ctx context.Context, id, userID uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := authz.CanMutatePost(post, userID); !d.Allowed {
		return nil, models.NewUnauthorizedError(d.Reason)
	}
	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}
	if err := s.resolveGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.ImageURL = in.ImageURL
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.posts.GetByID(ctx, post.ID)
}

// DeletePost enforces the same ownership rule as UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, id, userID uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d := authz.CanMutatePost(post, userID); !d.Allowed {
		return models.NewUnauthorizedError(d.Reason)
	}
	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
