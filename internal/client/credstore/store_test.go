package credstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/rentverse/internal/client/storage"
	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T, secret string) (*Store, *sql.DB) {
	t.Helper()
	db := openDB(t, filepath.Join(t.TempDir(), "cred.db"))
	s, err := New(context.Background(), db, secret)
	require.NoError(t, err)
	return s, db
}

func sampleUser() models.User {
	return models.User{
		ID:        "u1",
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     common.Ptr("0123456789"),
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Role:      "user",
	}
}

func TestEmptyStore(t *testing.T) {
	s, _ := newStore(t, "")
	ctx := context.Background()

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	rt, err := s.GetRefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, rt)

	u, err := s.GetUserData(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRoundTrip(t *testing.T) {
	for _, secret := range []string{"", "s3cret"} {
		t.Run("secret="+secret, func(t *testing.T) {
			s, _ := newStore(t, secret)
			ctx := context.Background()

			require.NoError(t, s.SaveToken(ctx, "access"))
			require.NoError(t, s.SetRefreshToken(ctx, "refresh"))
			require.NoError(t, s.SaveUserData(ctx, sampleUser()))

			tok, err := s.GetToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "access", tok)

			rt, err := s.GetRefreshToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "refresh", rt)

			u, err := s.GetUserData(ctx)
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, sampleUser(), *u)
		})
	}
}

func TestSealedValuesAreNotPlaintext(t *testing.T) {
	s, db := newStore(t, "s3cret")
	ctx := context.Background()
	require.NoError(t, s.SaveToken(ctx, "access-token-value"))

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, common.KeyAccessToken)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "access-token-value")
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.db")
	ctx := context.Background()

	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	s, err := New(ctx, db, "s3cret")
	require.NoError(t, err)
	require.NoError(t, s.SaveAuth(ctx, models.AuthResponse{Token: "t", RefreshToken: "r", User: sampleUser()}))
	require.NoError(t, db.Close())

	db = openDB(t, path)
	s, err = New(ctx, db, "s3cret")
	require.NoError(t, err)

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", tok)

	// a different secret cannot open the values
	wrong, err := New(ctx, db, "other")
	require.NoError(t, err)
	_, err = wrong.GetToken(ctx)
	assert.Error(t, err)
}

func TestSaveAuth_WithoutRefreshDropsPrevious(t *testing.T) {
	s, _ := newStore(t, "")
	ctx := context.Background()

	require.NoError(t, s.SaveAuth(ctx, models.AuthResponse{Token: "tokA", RefreshToken: "refA", User: sampleUser()}))
	require.NoError(t, s.SaveAuth(ctx, models.AuthResponse{Token: "tokB", User: sampleUser()}))

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	rt, err := s.GetRefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tokB", tok)
	assert.Empty(t, rt)
}

func TestSaveTokens(t *testing.T) {
	s, _ := newStore(t, "")
	ctx := context.Background()

	require.NoError(t, s.SaveTokens(ctx, "a1", "r1"))
	require.NoError(t, s.SaveTokens(ctx, "a2", ""))

	tok, _ := s.GetToken(ctx)
	rt, _ := s.GetRefreshToken(ctx)
	assert.Equal(t, "a2", tok)
	assert.Equal(t, "r1", rt)
}

func TestClearAll(t *testing.T) {
	s, db := newStore(t, "s3cret")
	ctx := context.Background()
	require.NoError(t, s.SaveAuth(ctx, models.AuthResponse{Token: "t", RefreshToken: "r", User: sampleUser()}))

	require.NoError(t, s.ClearAll(ctx))

	tok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	u, err := s.GetUserData(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	all, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{common.KeySealSalt}, keys(all))
}

func TestClosedDB_Errors(t *testing.T) {
	s, db := newStore(t, "")
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := s.GetToken(ctx)
	assert.Error(t, err)
	assert.Error(t, s.SaveUserData(ctx, sampleUser()))
	assert.Error(t, s.ClearAll(ctx))
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
