package app

import (
	"context"
	"regexp"
	"strings"

	"github.com/Magupe09/auth-prueba/internal/clock"
	"github.com/Magupe09/auth-prueba/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PasswordHasher hides the hashing scheme from the app layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints an access token for a verified identity.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

type UserService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	clock  clock.Clock
}

func NewUserService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		clock:  clk,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return domain.User{}, domain.ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, domain.ErrInvalidEmail
	}
	if len(in.Password) < 6 {
		return domain.User{}, domain.ErrPasswordTooShort
	}

	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if existing != nil {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.CreateUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	})
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

type LoginResult struct {
	UserID int64
	Token  string
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return LoginResult{}, err
	}
	if user == nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{UserID: user.ID, Token: token}, nil
}
