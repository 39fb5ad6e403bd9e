package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/equivet/backend/internal/domain/entity"
)

type fakeTokenRepo struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		saved:       map[string]uuid.UUID{},
		invalidated: map[string]bool{},
	}
}

func (f *fakeTokenRepo) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	f.saved[token] = userID
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := f.saved[token]
	return ok && !f.invalidated[token], nil
}

func (f *fakeTokenRepo) InvalidateRefreshToken(_ context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenRepo) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, id := range f.saved {
		if id == userID {
			f.invalidated[token] = true
		}
	}
	return nil
}

func testUser() *entity.User {
	return entity.NewUser("vet@equivet.example", "Dr. Reyes", "hash", []entity.Role{entity.RoleVet, entity.RoleStaff})
}

func TestTokenServiceGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepo()
	service := NewTokenService("test-secret", repo)
	user := testUser()

	pair, err := service.GenerateTokenPair(ctx, user)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be generated")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens should differ")
	}

	t.Run("access token carries identity and roles", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
		}
		if claims.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, claims.Email)
		}
		if len(claims.Roles) != 2 || claims.Roles[0] != entity.RoleVet {
			t.Errorf("expected roles to round-trip, got %v", claims.Roles)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("access token should not be expired")
		}
	})

	t.Run("refresh token is stored for revocation", func(t *testing.T) {
		if repo.saved[pair.RefreshToken] != user.ID {
			t.Error("expected the refresh token to be saved for the user")
		}
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if !valid {
			t.Error("expected a freshly issued refresh token to be valid")
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("refresh token must not validate as access token")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("access token must not validate as refresh token")
		}
	})

	t.Run("invalidation revokes the refresh token", func(t *testing.T) {
		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("InvalidateRefreshToken failed: %v", err)
		}
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("expected the refresh token to be revoked")
		}
	})
}

func TestTokenServiceRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", newFakeTokenRepo())

	t.Run("garbage token", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-jwt"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", newFakeTokenRepo())
		pair, err := other.GenerateTokenPair(ctx, testUser())
		if err != nil {
			t.Fatalf("GenerateTokenPair failed: %v", err)
		}
		if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token with wrong signature to be rejected")
		}
	})
}
