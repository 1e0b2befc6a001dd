// Package auth resolves the acting user for authenticated routes.
//
// Session handling lives in the edge proxy; by the time a request
// reaches this service the proxy has verified the session and forwarded
// the member's ID in the X-User-ID header. This middleware loads the
// user row so handlers can consult the current reputation total.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Header carries the authenticated member's ID, set by the edge proxy.
const Header = "X-User-ID"

type userCtxKey struct{}

// FromContext retrieves the acting user from context.
func FromContext(ctx context.Context) (*types.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*types.User)
	return user, ok
}

// Middleware resolves the acting user on each request.
type Middleware struct {
	db     database.Client
	logger *zap.Logger
}

// New creates a new auth middleware.
func New(db database.Client, logger *zap.Logger) *Middleware {
	return &Middleware{
		db:     db,
		logger: logger,
	}
}

// AsRESTMiddleware returns a bunrouter middleware that requires a valid
// X-User-ID header and stores the loaded user in the request context.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		ref := req.Header.Get(Header)
		if ref == "" {
			http.Error(w, "Missing "+Header+" header", http.StatusUnauthorized)
			return nil
		}

		user, err := m.db.Model().User().GetUserByRef(req.Context(), ref)
		if err != nil {
			if errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrInvalidUserID) {
				http.Error(w, "Unknown user", http.StatusUnauthorized)
				return nil
			}

			m.logger.Error("Failed to resolve acting user", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		ctx := context.WithValue(req.Context(), userCtxKey{}, user)

		return next(w, req.WithContext(ctx))
	}
}
