package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// RefreshPath is the endpoint exchanging a refresh token for a new pair.
const RefreshPath = "/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// accessToken returns the stored token, refreshing it first when it is a JWT
// about to expire. A failed proactive refresh falls back to the old token.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read access token: %w", err)
	}
	if token == "" || !c.expiringSoon(token) {
		return token, nil
	}

	fresh, err := c.refresh(ctx, token)
	if err != nil {
		c.log.Debug(ctx, "proactive token refresh failed", "error", err)
		return token, nil
	}
	return fresh, nil
}

// expiringSoon reports whether token is a JWT whose exp lies within the
// refresh skew. Tokens that are not JWTs, or carry no exp, never expire here.
func (c *Client) expiringSoon(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(c.now().Add(c.skew))
}

// refresh exchanges the stored refresh token for a new pair. stale is the
// token the caller saw; if another call already replaced it, the stored
// token is returned without contacting the server.
func (c *Client) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	current, err := c.tokens.GetToken(ctx)
	if err != nil {
		return "", err
	}
	if current != "" && current != stale {
		return current, nil
	}

	rt, err := c.tokens.GetRefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if rt == "" {
		return "", common.ErrRefreshFailed
	}

	var resp refreshResponse
	if err := c.PostAnonymous(ctx, RefreshPath, refreshRequest{RefreshToken: rt}, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRefreshFailed, err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", common.ErrRefreshFailed)
	}

	if err := c.tokens.SaveTokens(ctx, resp.Token, resp.RefreshToken); err != nil {
		return "", fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	c.log.Info(ctx, "access token refreshed")
	return resp.Token, nil
}
