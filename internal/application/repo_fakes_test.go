package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/internal/domain/repository"
)

// In-memory repository fakes mirroring the Postgres behavior the services
// rely on: ErrNotFound for missing rows, ErrDuplicate for unique columns,
// first user becomes admin.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	if len(r.users) == 0 {
		u.Role = entity.RoleAdmin
	} else {
		u.Role = entity.RoleUser
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) SetRole(_ context.Context, id int64, role entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	order  []int64
	posts  map[int64]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: map[int64]*entity.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.posts {
		if ex.Title == p.Title {
			return repository.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.posts[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Post, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.posts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, other := range r.posts {
		if other.ID != p.ID && other.Title == p.Title {
			return repository.ErrDuplicate
		}
	}
	ex.Title = p.Title
	ex.Subtitle = p.Subtitle
	ex.Body = p.Body
	ex.ImgURL = p.ImgURL
	ex.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	comments []entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.PostRepository    = (*fakePostRepo)(nil)
	_ repository.CommentRepository = (*fakeCommentRepo)(nil)
)
