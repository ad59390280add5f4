package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-blog-api/internal/domain"
)

func TestCreatePost_Validation(t *testing.T) {
	r, _ := setupAPI(t)

	w, env := doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "T", "slug": "s"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title, slug, and content are required", env.Error)
	assert.NotEmpty(t, env.Timestamp)
}

func TestCreatePost_SuccessAndDuplicateSlug(t *testing.T) {
	r, _ := setupAPI(t)

	body := map[string]any{"title": "Hello", "slug": "hello", "content": "body"}
	w, env := doReq(t, r, http.MethodPost, "/api/v1/posts", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Post created successfully", env.Message)

	var p domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "draft", p.Status)
	assert.Zero(t, p.ViewCount)

	// 第二次同 slug → 400
	w, env = doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "Other", "slug": "hello", "content": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Slug already exists", env.Error)
}

func TestListPosts_PublishedOnly(t *testing.T) {
	r, _ := setupAPI(t)

	doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "D", "slug": "draft-1", "content": "x"}, nil)
	doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "P", "slug": "pub-1", "content": "x", "status": "published"}, nil)

	w, env := doReq(t, r, http.MethodGet, "/api/v1/posts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "pub-1", posts[0].Slug)
}

func TestGetPost_IncrementsViewCount(t *testing.T) {
	r, _ := setupAPI(t)

	_, env := doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "V", "slug": "views", "content": "x"}, nil)
	var p domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &p))

	// 第一次读返回自增前的 0
	w, env := doReq(t, r, http.MethodGet, "/api/v1/posts/"+p.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 0, p.ViewCount)

	// 第二次读能看到第一次的 +1
	w, env = doReq(t, r, http.MethodGet, "/api/v1/posts/"+p.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 1, p.ViewCount)
}

func TestGetPostBySlug_DoesNotIncrement(t *testing.T) {
	r, _ := setupAPI(t)

	doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "V", "slug": "views", "content": "x"}, nil)

	var p domain.Post
	for i := 0; i < 3; i++ {
		w, env := doReq(t, r, http.MethodGet, "/api/v1/posts/slug/views", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Zero(t, p.ViewCount)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	r, _ := setupAPI(t)

	w, env := doReq(t, r, http.MethodGet, "/api/v1/posts/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", env.Error)

	w, env = doReq(t, r, http.MethodGet, "/api/v1/posts/slug/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", env.Error)
}

func TestUpdatePost_SlugCollision(t *testing.T) {
	r, _ := setupAPI(t)

	_, env := doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "One", "slug": "one", "content": "x"}, nil)
	var p1 domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &p1))
	doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "Two", "slug": "two", "content": "x"}, nil)

	w, env := doReq(t, r, http.MethodPut, "/api/v1/posts/"+p1.ID,
		map[string]any{"slug": "two"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Slug already exists", env.Error)

	w, env = doReq(t, r, http.MethodPut, "/api/v1/posts/"+p1.ID,
		map[string]any{"title": "One v2"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post updated successfully", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &p1))
	assert.Equal(t, "One v2", p1.Title)
}

func TestPublishPost_Idempotent(t *testing.T) {
	r, _ := setupAPI(t)

	_, env := doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "P", "slug": "pub", "content": "x"}, nil)
	var p domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &p))

	w, env := doReq(t, r, http.MethodPatch, "/api/v1/posts/"+p.ID+"/publish", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post published successfully", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "published", p.Status)

	// 重复发布依旧 200，状态不变
	w, env = doReq(t, r, http.MethodPatch, "/api/v1/posts/"+p.ID+"/publish", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "published", p.Status)
}

func TestDeletePost_SoftDelete(t *testing.T) {
	r, db := setupAPI(t)

	_, env := doReq(t, r, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "X", "slug": "x", "content": "x"}, nil)
	var p domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &p))

	w, env := doReq(t, r, http.MethodDelete, "/api/v1/posts/"+p.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted successfully", env.Message)

	w, env = doReq(t, r, http.MethodGet, "/api/v1/posts/"+p.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var n int64
	require.NoError(t, db.Unscoped().Model(&domain.Post{}).Where("id = ?", p.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestHealthAndWelcome(t *testing.T) {
	r, _ := setupAPI(t)

	w, env := doReq(t, r, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Server is healthy", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data, "uptime")
	assert.Equal(t, "test", data["environment"])

	w, env = doReq(t, r, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Timestamp)
}
