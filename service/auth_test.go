package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"FitHub/config"
	"FitHub/dao"
	"FitHub/pkg/errs"
	"FitHub/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[int64]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[int64]string{}}
}

func (f *fakeTokenStore) StoreRefreshToken(_ context.Context, userID int64, token string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[userID] = token
	return nil
}

func (f *fakeTokenStore) ValidateRefreshToken(_ context.Context, userID int64, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[userID] == token, nil
}

func (f *fakeTokenStore) DeleteRefreshToken(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userID)
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeTokenStore) {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, "alice") // password "secret"
	store := newFakeTokenStore()
	svc := &AuthService{
		Config: &config.Config{
			Jwt: &config.Jwt{Secret: "test-secret", AccessExpire: 15, RefreshExpire: 60},
		},
		UserDAO: dao.NewUserDAO(db),
		Tokens:  store,
	}
	return svc, store
}

func TestLogin(t *testing.T) {
	svc, store := newAuthService(t)

	pair, err := svc.Login(testCtx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := jwt.ParseToken([]byte("test-secret"), "access", pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.NotZero(t, claims.UserID)

	// refresh token is allowlisted for that user
	ok, err := store.ValidateRefreshToken(testCtx, claims.UserID, pair.RefreshToken)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(testCtx, "alice", "wrong")
	require.True(t, errs.IsKind(err, errs.KindUnauthorized))

	_, err = svc.Login(testCtx, "nobody", "secret")
	require.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func TestRefreshRotatesPair(t *testing.T) {
	svc, store := newAuthService(t)

	pair, err := svc.Login(testCtx, "alice", "secret")
	require.NoError(t, err)

	rotated, err := svc.Refresh(testCtx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)

	claims, err := jwt.ParseToken([]byte("test-secret"), "refresh", rotated.RefreshToken)
	require.NoError(t, err)

	// only the newest refresh token stays valid
	ok, err := store.ValidateRefreshToken(testCtx, claims.UserID, rotated.RefreshToken)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	svc, store := newAuthService(t)

	pair, err := svc.Login(testCtx, "alice", "secret")
	require.NoError(t, err)

	claims, err := jwt.ParseToken([]byte("test-secret"), "refresh", pair.RefreshToken)
	require.NoError(t, err)
	require.NoError(t, store.DeleteRefreshToken(testCtx, claims.UserID))

	_, err = svc.Refresh(testCtx, pair.RefreshToken)
	require.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)

	pair, err := svc.Login(testCtx, "alice", "secret")
	require.NoError(t, err)

	// an access token must not pass as a refresh token
	_, err = svc.Refresh(testCtx, pair.AccessToken)
	require.True(t, errs.IsKind(err, errs.KindUnauthorized))
}
