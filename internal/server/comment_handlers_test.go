package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresAuth(t *testing.T) {
	_, app, db := setupTestServer(t)
	author := createTestUser(t, db, "alice")
	seedPost(t, db, author.ID, "a post", nil)

	resp := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", "",
		map[string]any{"text": "drive-by"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count, "rejected comment must not persist")
}

func TestCreateCommentRejectsEmptyText(t *testing.T) {
	s, app, db := setupTestServer(t)
	author := createTestUser(t, db, "alice")
	seedPost(t, db, author.ID, "a post", nil)

	resp := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", authToken(t, s, author),
		map[string]any{"text": " "}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	s, app, db := setupTestServer(t)
	user := createTestUser(t, db, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/posts/999/comments", authToken(t, s, user),
		map[string]any{"text": "into the void"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCommentsListAscending(t *testing.T) {
	s, app, db := setupTestServer(t)
	author := createTestUser(t, db, "alice")
	commenter := createTestUser(t, db, "bob")
	seedPost(t, db, author.ID, "a post", nil)

	for _, text := range []string{"first", "second", "third"} {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", authToken(t, s, commenter),
			map[string]any{"text": text}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var out struct {
		Comments []struct {
			Text   string `json:"text"`
			UserID uint   `json:"user_id"`
		} `json:"comments"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/posts/1/comments", "", nil, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Comments, 3)
	assert.Equal(t, "first", out.Comments[0].Text, "comments read oldest first")
	assert.Equal(t, "third", out.Comments[2].Text)
	assert.Equal(t, commenter.ID, out.Comments[0].UserID)
}
