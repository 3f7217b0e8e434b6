// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// Every listing returns the posts for the requested window plus the total
// row count so callers can build page metadata.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, int64, error)
	ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error)
	ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, int64, error)
	ListFollowed(ctx context.Context, followerID uint, limit, offset int) ([]*models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHomeFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx)).
			Preload("User").
			Preload("Group").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	return r.listWhere(ctx, limit, offset, nil)
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	return r.listWhere(ctx, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.user_id = ?", userID)
	})
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, int64, error) {
	return r.listWhere(ctx, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.group_id = ?", groupID)
	})
}

func (r *postRepository) ListFollowed(ctx context.Context, followerID uint, limit, offset int) ([]*models.Post, int64, error) {
	return r.listWhere(ctx, limit, offset, func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN follows ON follows.author_id = posts.user_id").
			Where("follows.follower_id = ?", followerID)
	})
}

// listWhere runs the shared newest-first listing query with an optional filter,
// counting the full result set before applying the window.
func (r *postRepository) listWhere(
	ctx context.Context,
	limit, offset int,
	filter func(*gorm.DB) *gorm.DB,
) ([]*models.Post, int64, error) {
	defer observability.ObserveQuery("list", "posts", time.Now())

	count := r.db.WithContext(ctx).Model(&models.Post{})
	if filter != nil {
		count = filter(count)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	base := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Group")
	if filter != nil {
		base = filter(base)
	}

	var posts []*models.Post
	if err := base.
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

// applyPostDetails adds the comment count subquery so listings and detail views
// carry it in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateHomeFeed(ctx)
	return nil
}

// Delete removes the post and its comments. Comments never outlive their post.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateHomeFeed(ctx)
	return nil
}
