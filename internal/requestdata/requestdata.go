package requestdata

import (
	"context"

	"github.com/arvandy/contacts-backend/internal/types"
)

type contextKey struct{}

var requestDataKey = contextKey{}

// RequestData carries the authenticated caller through the request context.
type RequestData struct {
	Token string
	User  *types.User
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
