package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	repo "github.com/rizkydarmawan/goblog/internal/domain/repository"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("title already in use")
)

// BlogService owns posts and their comments.
type BlogService struct {
	Posts     repo.PostRepository
	Comments  repo.CommentRepository
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewBlogService(posts repo.PostRepository, comments repo.CommentRepository, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *BlogService {
	return &BlogService{Posts: posts, Comments: comments, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

// PostInput carries the four author-editable fields.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// CreatePost stamps the display date and binds the author. A duplicate
// title surfaces as ErrTitleTaken instead of a raw constraint fault.
func (s *BlogService) CreatePost(ctx context.Context, in PostInput, authorID int64) (*entity.Post, error) {
	p := &entity.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
		Date:     time.Now().Format(entity.DateLayout),
		AuthorID: authorID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			if s.Logger != nil {
				s.Logger.WithField("title", in.Title).Warn("duplicate post title rejected")
			}
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return p, nil
}

// ListPosts returns every post in storage-natural order.
func (s *BlogService) ListPosts(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

// GetPost returns one post and the comments belonging to it.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*entity.Post, []entity.Comment, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return p, comments, nil
}

// UpdatePost overwrites exactly the four mutable fields; identifier, author
// and the original display date stay as created.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, in PostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Body = in.Body
	p.ImgURL = in.ImgURL
	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			if s.Logger != nil {
				s.Logger.WithField("title", in.Title).Warn("duplicate post title rejected")
			}
			return nil, ErrTitleTaken
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// DeletePost removes the post; its comments go with it (cascade).
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	if err := s.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// AddComment persists a comment bound to the authenticated identity and the
// target post. The post must exist; the caller must already be
// authenticated (enforced at the routing layer).
func (s *BlogService) AddComment(ctx context.Context, postID, authorID int64, body string) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	c := &entity.Comment{Body: body, AuthorID: authorID, PostID: postID}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UploadCoverImage stores a cover image in GCS and returns its public URL
// for use as a post's image URL.
func (s *BlogService) UploadCoverImage(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("image storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}
