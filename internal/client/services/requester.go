// Package services wraps the rental API endpoints in typed calls. Each
// service validates its input before any request is made and returns API
// failures unchanged as *api.Error.
package services

import (
	"context"
	"io"
	"net/url"
)

// Requester is the part of api.Client the services use.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, in, out any) error
	PostAnonymous(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Patch(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string, out any) error
	Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error
}
