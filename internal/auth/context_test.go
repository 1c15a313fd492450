package auth

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestGetUserID(t *testing.T) {
	assert.Equal(t, "", GetUserID(context.Background()))

	fromMD := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-user-id", "tech-7"))
	assert.Equal(t, "tech-7", GetUserID(fromMD))

	fromCtx := context.WithValue(fromMD, middleware.UserIDKey, "lead-1")
	assert.Equal(t, "lead-1", GetUserID(fromCtx))
}
