package service

import (
	"context"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest(groups ...*models.Group) (*PostService, *memPostRepo) {
	posts := newMemPostRepo()
	return NewPostService(posts, newMemGroupRepo(groups...)), posts
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	return appErr.Code
}

func TestCreatePostRejectsEmptyText(t *testing.T) {
	svc, _ := newPostServiceForTest()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: text})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	}
}

func TestCreatePostUnknownGroupIsValidationError(t *testing.T) {
	svc, repo := newPostServiceForTest()

	missing := uint(42)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: "hello", GroupID: &missing})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	assert.Empty(t, repo.posts, "invalid submission must not persist a post")
}

func TestCreatePostAssignsAuthorAndGroup(t *testing.T) {
	groupID := uint(7)
	svc, _ := newPostServiceForTest(&models.Group{ID: groupID, Title: "Cats", Slug: "cats"})

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 3, Text: "meow", GroupID: &groupID})
	require.NoError(t, err)
	assert.Equal(t, uint(3), post.UserID)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, groupID, *post.GroupID)
}

func TestUpdatePostByNonAuthorLeavesPostUnchanged(t *testing.T) {
	svc, repo := newPostServiceForTest()

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: "original"})
	require.NoError(t, err)

	_, err = svc.UpdatePost(context.Background(), post.ID, 2, UpdatePostInput{Text: "hijacked"})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))

	stored, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Text)
}

func TestUpdatePostByAuthorReplacesFormFields(t *testing.T) {
	groupID := uint(5)
	svc, _ := newPostServiceForTest(&models.Group{ID: groupID, Title: "Dogs", Slug: "dogs"})

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: "before", GroupID: &groupID})
	require.NoError(t, err)

	updated, err := svc.UpdatePost(context.Background(), post.ID, 1, UpdatePostInput{Text: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Nil(t, updated.GroupID, "omitting the group in the form clears it")
	assert.Equal(t, uint(1), updated.UserID, "authorship never changes on edit")
}

func TestDeletePostEnforcesOwnership(t *testing.T) {
	svc, repo := newPostServiceForTest()

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: "keep me"})
	require.NoError(t, err)

	err = svc.DeletePost(context.Background(), post.ID, 2)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))
	_, err = repo.GetByID(context.Background(), post.ID)
	assert.NoError(t, err, "denied delete must leave the post in place")

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, 1))
	_, err = svc.GetPost(context.Background(), post.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}
