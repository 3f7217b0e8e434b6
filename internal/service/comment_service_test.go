package service

import (
	"context"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentServiceForTest(t *testing.T) (*CommentService, *memCommentRepo, *models.Post) {
	t.Helper()
	posts := newMemPostRepo()
	post := &models.Post{Text: "a post", UserID: 1}
	require.NoError(t, posts.Create(context.Background(), post))
	comments := newMemCommentRepo()
	return NewCommentService(comments, posts), comments, post
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	svc, repo, post := newCommentServiceForTest(t)

	_, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 2, PostID: post.ID, Text: "  "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
	assert.Empty(t, repo.comments)
}

func TestAddCommentToMissingPost(t *testing.T) {
	svc, repo, _ := newCommentServiceForTest(t)

	_, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 2, PostID: 999, Text: "hello"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
	assert.Empty(t, repo.comments)
}

func TestAddCommentPersistsAndLists(t *testing.T) {
	svc, _, post := newCommentServiceForTest(t)

	first, err := svc.AddComment(context.Background(), AddCommentInput{UserID: 2, PostID: post.ID, Text: "first"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), first.UserID)
	assert.Equal(t, post.ID, first.PostID)

	_, err = svc.AddComment(context.Background(), AddCommentInput{UserID: 3, PostID: post.ID, Text: "second"})
	require.NoError(t, err)

	listed, err := svc.ListForPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Text, "comments read oldest first")
	assert.Equal(t, "second", listed[1].Text)
}

func TestListForMissingPost(t *testing.T) {
	svc, _, _ := newCommentServiceForTest(t)

	_, err := svc.ListForPost(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}
