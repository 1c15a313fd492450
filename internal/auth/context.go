package auth

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// GetUserID returns the acting user, preferring what the interceptor put on
// the context and falling back to the raw metadata header.
func GetUserID(ctx context.Context) string {
	if v, ok := middleware.UserIDFromContext(ctx); ok {
		return v
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get("x-user-id"); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
