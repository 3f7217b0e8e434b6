package service

import (
	"context"
	"sort"

	"yatube/internal/models"
)

// In-memory repositories for service tests. They keep just enough
// behavior to exercise the services: newest-first post ordering, not
// found translation, and idempotent follows.

type memPostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
	// followed maps a follower id to the set of author ids they follow,
	// standing in for the follows join in ListFollowed.
	followed map[uint]map[uint]bool
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{
		posts:    make(map[uint]*models.Post),
		followed: make(map[uint]map[uint]bool),
	}
}

func (r *memPostRepo) follow(followerID, authorID uint) {
	if r.followed[followerID] == nil {
		r.followed[followerID] = make(map[uint]bool)
	}
	r.followed[followerID][authorID] = true
}

func (r *memPostRepo) Create(_ context.Context, post *models.Post) error {
	r.nextID++
	post.ID = r.nextID
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	cp := *post
	return &cp, nil
}

func (r *memPostRepo) all() []*models.Post {
	out := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func window(posts []*models.Post, limit, offset int) ([]*models.Post, int64) {
	total := int64(len(posts))
	if offset >= len(posts) {
		return nil, total
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], total
}

func (r *memPostRepo) List(_ context.Context, limit, offset int) ([]*models.Post, int64, error) {
	posts, total := window(r.all(), limit, offset)
	return posts, total, nil
}

func (r *memPostRepo) filtered(keep func(*models.Post) bool) []*models.Post {
	var out []*models.Post
	for _, p := range r.all() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *memPostRepo) ListByAuthor(_ context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	posts, total := window(r.filtered(func(p *models.Post) bool { return p.UserID == userID }), limit, offset)
	return posts, total, nil
}

func (r *memPostRepo) ListByGroup(_ context.Context, groupID uint, limit, offset int) ([]*models.Post, int64, error) {
	posts, total := window(r.filtered(func(p *models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), limit, offset)
	return posts, total, nil
}

func (r *memPostRepo) ListFollowed(_ context.Context, followerID uint, limit, offset int) ([]*models.Post, int64, error) {
	authors := r.followed[followerID]
	posts, total := window(r.filtered(func(p *models.Post) bool { return authors[p.UserID] }), limit, offset)
	return posts, total, nil
}

func (r *memPostRepo) Update(_ context.Context, post *models.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return models.NewNotFoundError("Post", post.ID)
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id uint) error {
	delete(r.posts, id)
	return nil
}

type memGroupRepo struct {
	groups map[uint]*models.Group
}

func newMemGroupRepo(groups ...*models.Group) *memGroupRepo {
	r := &memGroupRepo{groups: make(map[uint]*models.Group)}
	for _, g := range groups {
		r.groups[g.ID] = g
	}
	return r
}

func (r *memGroupRepo) Create(_ context.Context, group *models.Group) error {
	r.groups[group.ID] = group
	return nil
}

func (r *memGroupRepo) GetByID(_ context.Context, id uint) (*models.Group, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, models.NewNotFoundError("Group", id)
	}
	return group, nil
}

func (r *memGroupRepo) GetBySlug(_ context.Context, slug string) (*models.Group, error) {
	for _, g := range r.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, models.NewNotFoundError("Group", slug)
}

func (r *memGroupRepo) List(_ context.Context) ([]*models.Group, error) {
	var out []*models.Group
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *memGroupRepo) Delete(_ context.Context, id uint) error {
	delete(r.groups, id)
	return nil
}

type memUserRepo struct {
	users map[uint]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, models.NewNotFoundError("User", username)
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

type followKey struct {
	follower, author uint
}

type memFollowRepo struct {
	follows map[followKey]bool
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{follows: make(map[followKey]bool)}
}

func (r *memFollowRepo) Follow(_ context.Context, followerID, authorID uint) error {
	r.follows[followKey{followerID, authorID}] = true
	return nil
}

func (r *memFollowRepo) Unfollow(_ context.Context, followerID, authorID uint) error {
	delete(r.follows, followKey{followerID, authorID})
	return nil
}

func (r *memFollowRepo) IsFollowing(_ context.Context, followerID, authorID uint) (bool, error) {
	return r.follows[followKey{followerID, authorID}], nil
}

func (r *memFollowRepo) CountFollowers(_ context.Context, authorID uint) (int64, error) {
	var n int64
	for k := range r.follows {
		if k.author == authorID {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) CountFollowing(_ context.Context, followerID uint) (int64, error) {
	var n int64
	for k := range r.follows {
		if k.follower == followerID {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) DeleteAllForUser(_ context.Context, userID uint) error {
	for k := range r.follows {
		if k.follower == userID || k.author == userID {
			delete(r.follows, k)
		}
	}
	return nil
}

type memCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uint]*models.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, models.NewNotFoundError("Comment", id)
	}
	return comment, nil
}

func (r *memCommentRepo) ListByPost(_ context.Context, postID uint) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id uint) error {
	delete(r.comments, id)
	return nil
}
