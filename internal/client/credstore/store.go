// Package credstore persists the session credentials (access token, refresh
// token and the cached user record) in the local database so they survive a
// restart.
//
// When a store secret is configured every value is sealed with AES-GCM under
// a key derived from the secret and a per-database salt; otherwise values are
// written as-is.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/dmitrijs2005/rentverse/internal/cryptox"
	"github.com/dmitrijs2005/rentverse/internal/dbx"
)

// Store is the durable credential store. It is safe for concurrent use to
// the extent the underlying *sql.DB is.
type Store struct {
	db     *sql.DB
	sealer *cryptox.Sealer
}

// New binds a Store to db. An empty secret disables sealing.
func New(ctx context.Context, db *sql.DB, secret string) (*Store, error) {
	s := &Store{db: db}
	if secret == "" {
		return s, nil
	}

	salt, err := s.loadSalt(ctx)
	if err != nil {
		return nil, err
	}
	sealer, err := cryptox.NewSealer([]byte(secret), salt)
	if err != nil {
		return nil, fmt.Errorf("failed to init sealer: %w", err)
	}
	s.sealer = sealer
	return s, nil
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// loadSalt returns the salt stored in the database, creating it on first use.
func (s *Store) loadSalt(ctx context.Context) ([]byte, error) {
	var salt []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		v, err := repo.Get(ctx, common.KeySealSalt)
		if err != nil {
			return err
		}
		if len(v) == cryptox.SaltSize {
			salt = v
			return nil
		}
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		return repo.Set(ctx, common.KeySealSalt, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seal salt: %w", err)
	}
	return salt, nil
}

func (s *Store) seal(v []byte) ([]byte, error) {
	if s.sealer == nil {
		return v, nil
	}
	return s.sealer.Seal(v)
}

func (s *Store) open(v []byte) ([]byte, error) {
	if s.sealer == nil {
		return v, nil
	}
	return s.sealer.Open(v)
}

func (s *Store) put(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	sealed, err := s.seal(value)
	if err != nil {
		return fmt.Errorf("failed to seal %s: %w", key, err)
	}
	return s.repo(db).Set(ctx, key, sealed)
}

// get returns nil when key is absent.
func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.repo(s.db).Get(ctx, key)
	if err != nil || v == nil {
		return nil, err
	}
	plain, err := s.open(v)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}
	return plain, nil
}

// GetToken returns the access token, or "" when none is stored.
func (s *Store) GetToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, common.KeyAccessToken)
	return string(v), err
}

func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.put(ctx, s.db, common.KeyAccessToken, []byte(token))
}

// GetRefreshToken returns the refresh token, or "" when none is stored.
func (s *Store) GetRefreshToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, common.KeyRefreshToken)
	return string(v), err
}

func (s *Store) SetRefreshToken(ctx context.Context, token string) error {
	return s.put(ctx, s.db, common.KeyRefreshToken, []byte(token))
}

// GetUserData returns the cached user, or nil when none is stored.
func (s *Store) GetUserData(ctx context.Context) (*models.User, error) {
	v, err := s.get(ctx, common.KeyUserData)
	if err != nil || v == nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}
	return &u, nil
}

func (s *Store) SaveUserData(ctx context.Context, user models.User) error {
	return s.saveUser(ctx, s.db, user)
}

func (s *Store) saveUser(ctx context.Context, db dbx.DBTX, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	return s.put(ctx, db, common.KeyUserData, data)
}

// SaveAuth writes the access token, the refresh token and the user record in
// one transaction. A response without a refresh token removes the stored one
// so a token issued to another account is never reused.
func (s *Store) SaveAuth(ctx context.Context, resp models.AuthResponse) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.put(ctx, tx, common.KeyAccessToken, []byte(resp.Token)); err != nil {
			return err
		}
		if resp.RefreshToken == "" {
			if err := s.repo(tx).Delete(ctx, common.KeyRefreshToken); err != nil {
				return err
			}
		} else if err := s.put(ctx, tx, common.KeyRefreshToken, []byte(resp.RefreshToken)); err != nil {
			return err
		}
		return s.saveUser(ctx, tx, resp.User)
	})
}

// SaveTokens replaces the token pair after a refresh.
func (s *Store) SaveTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.put(ctx, tx, common.KeyAccessToken, []byte(access)); err != nil {
			return err
		}
		if refresh == "" {
			return nil
		}
		return s.put(ctx, tx, common.KeyRefreshToken, []byte(refresh))
	})
}

// ClearAll removes every stored credential. The seal salt is kept.
func (s *Store) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, k := range []string{common.KeyAccessToken, common.KeyRefreshToken, common.KeyUserData} {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
