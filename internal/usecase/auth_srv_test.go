package usecase

import (
	"context"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	cfg := &utils.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryDays = 7
	return cfg
}

func registerReq(username string) *request.RegisterRequest {
	return &request.RegisterRequest{
		FirstName: "Test",
		LastName:  "Tester",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret123",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and returns a usable token", func(t *testing.T) {
		f := newFixture()
		svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

		resp, err := svc.Register(ctx, registerReq("alice"))
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.User.Username)
		assert.Equal(t, entity.RoleUser, resp.User.Role)

		userID, err := utils.ParseToken(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, userID.String())
	})

	t.Run("accepts an explicit admin role", func(t *testing.T) {
		f := newFixture()
		svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

		req := registerReq("root")
		req.Role = "Admin"

		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newFixture()
		svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

		_, err := svc.Register(ctx, registerReq("alice"))
		require.NoError(t, err)

		dup := registerReq("alice2")
		dup.Email = "alice@example.com"
		_, err = svc.Register(ctx, dup)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		f := newFixture()
		svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

		_, err := svc.Register(ctx, registerReq("alice"))
		require.NoError(t, err)

		dup := registerReq("alice")
		dup.Email = "other@example.com"
		_, err = svc.Register(ctx, dup)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("invalid payload fails validation", func(t *testing.T) {
		f := newFixture()
		svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

		cases := []struct {
			name   string
			mutate func(*request.RegisterRequest)
		}{
			{"bad email", func(r *request.RegisterRequest) { r.Email = "nope" }},
			{"short password", func(r *request.RegisterRequest) { r.Password = "abc" }},
			{"short username", func(r *request.RegisterRequest) { r.Username = "ab" }},
			{"unknown role", func(r *request.RegisterRequest) { r.Role = "Owner" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := registerReq("alice")
				tc.mutate(req)
				_, err := svc.Register(ctx, req)
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := NewAuthService(f.repo, testConfig(), zap.NewNop())

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
