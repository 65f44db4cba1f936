package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	repo "github.com/rizkydarmawan/goblog/internal/domain/repository"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService owns registration, authentication and the Redis-backed
// session lifecycle.
type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, sessionTTL time.Duration) *UserService {
	return &UserService{Repo: r, JWT: jwt, Redis: rdb, Logger: logger, SessionTTL: sessionTTL}
}

// TokenPair is one issued access/refresh cookie pair.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// SessionKey returns the Redis key holding a user's session hash.
func SessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Register creates the account and immediately establishes a session for
// it, mirroring the registration flow of the site: sign up, get logged in,
// land on the listing. A duplicate email fails with ErrEmailTaken and
// leaves the existing account untouched.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*entity.User, TokenPair, error) {
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, TokenPair{}, ErrEmailTaken
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Lost the race against a concurrent registration of the same
			// email; same outcome as the pre-check.
			return nil, TokenPair{}, ErrEmailTaken
		}
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Authenticate validates email/password without issuing tokens.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login validates credentials and establishes a session.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssueTokens generates access/refresh tokens and records the session in
// Redis. The session hash is what the Auth middleware verifies on every
// request; clearing it invalidates the cookies immediately.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := SessionKey(u.ID)
		fields := map[string]any{
			"user_id":    strconv.FormatInt(u.ID, 10),
			"email":      u.Email,
			"name":       u.Name,
			"role":       string(u.Role),
			"sid":        sid,
			"created_at": nowRFC3339(),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis session write failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and both tokens after validating the
// refresh token against the live session.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, SessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Logout deletes the session hash, invalidating outstanding tokens.
func (s *UserService) Logout(ctx context.Context, userID int64) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, SessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("redis session delete failed")
	}
}

// GetProfile returns the stored user for an authenticated identity.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
