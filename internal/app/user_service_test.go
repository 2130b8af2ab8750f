package app

import (
	"context"
	"testing"
	"time"

	"github.com/Magupe09/auth-prueba/internal/auth"
	"github.com/Magupe09/auth-prueba/internal/clock"
	"github.com/Magupe09/auth-prueba/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	newService := func(repo *fakeUserRepo) *UserService {
		return NewUserService(repo, auth.NewBcryptHasher(bcrypt.MinCost), stubIssuer{}, clock.NewFixed(now))
	}

	t.Run("registers user and strips hash from result", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newService(repo)

		user, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Mauricio",
			Email:    "mauricio@email.com",
			Password: "miClave123",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.ID == 0 {
			t.Fatalf("expected assigned user id")
		}
		if user.PasswordHash != "" {
			t.Fatalf("expected hash stripped from result")
		}

		stored := repo.byEmail["mauricio@email.com"]
		if stored == nil {
			t.Fatalf("expected user persisted")
		}
		if stored.PasswordHash == "" || stored.PasswordHash == "miClave123" {
			t.Fatalf("expected password stored hashed")
		}
		if stored.CreatedAt != now {
			t.Fatalf("expected created_at %v, got %v", now, stored.CreatedAt)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newService(repo)

		if _, err := svc.Register(context.Background(), RegisterInput{
			Name: "A", Email: "a@b.com", Password: "secret1",
		}); err != nil {
			t.Fatalf("first register: %v", err)
		}
		_, err := svc.Register(context.Background(), RegisterInput{
			Name: "B", Email: "a@b.com", Password: "secret2",
		})
		if err != domain.ErrEmailTaken {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newService(repo)

		cases := []struct {
			name string
			in   RegisterInput
			want error
		}{
			{"missing name", RegisterInput{Email: "a@b.com", Password: "secret1"}, domain.ErrNameRequired},
			{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1"}, domain.ErrInvalidEmail},
			{"short password", RegisterInput{Name: "A", Email: "a@b.com", Password: "12345"}, domain.ErrPasswordTooShort},
		}
		for _, tc := range cases {
			if _, err := svc.Register(context.Background(), tc.in); err != tc.want {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	seed := func(t *testing.T, repo *fakeUserRepo, email, password string) int64 {
		t.Helper()
		hash, err := hasher.Hash(password)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		user, err := repo.CreateUser(context.Background(), domain.User{
			Name: "Mauricio", Email: email, PasswordHash: hash, CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		return user.ID
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := newFakeUserRepo()
		userID := seed(t, repo, "mauricio@email.com", "miClave123")
		svc := NewUserService(repo, hasher, stubIssuer{}, clock.NewFixed(now))

		res, err := svc.Login(context.Background(), "mauricio@email.com", "miClave123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.UserID != userID {
			t.Fatalf("expected user id %d, got %d", userID, res.UserID)
		}
		if res.Token == "" {
			t.Fatalf("expected token")
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		repo := newFakeUserRepo()
		seed(t, repo, "mauricio@email.com", "miClave123")
		svc := NewUserService(repo, hasher, stubIssuer{}, clock.NewFixed(now))

		_, errWrong := svc.Login(context.Background(), "mauricio@email.com", "otraClave321")
		_, errUnknown := svc.Login(context.Background(), "nadie@email.com", "miClave123")
		if errWrong != domain.ErrInvalidCredentials || errUnknown != domain.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", errWrong, errUnknown)
		}
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), hasher, stubIssuer{}, clock.NewFixed(now))

		if _, err := svc.Login(context.Background(), "", "miClave123"); err != domain.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.User{}, domain.ErrEmailTaken
	}
	f.nextID++
	user.ID = f.nextID
	stored := user
	f.byEmail[user.Email] = &stored
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copy := *user
	return &copy, nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(userID int64, email string) (string, error) {
	return "token-for-" + email, nil
}
