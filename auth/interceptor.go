package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// MethodRules lists which gRPC methods skip authentication and which need the admin role.
type MethodRules struct {
	Public    map[string]struct{}
	AdminOnly map[string]struct{}
}

// UnaryInterceptor handles JWT validation for incoming gRPC calls.
func UnaryInterceptor(issuer TokenIssuer, rules MethodRules) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := rules.Public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is missing")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
		}

		// Expecting the standard "Bearer <token>" format
		tokenStr := strings.TrimPrefix(values[0], "Bearer ")

		claims, err := issuer.ValidateToken(tokenStr)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		if _, adminOnly := rules.AdminOnly[info.FullMethod]; adminOnly && !hasRole(claims.Roles, RoleAdmin) {
			return nil, status.Error(codes.PermissionDenied, "admin role required")
		}

		newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
		newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
		return handler(newCtx, req)
	}
}

// UserID returns the authenticated user injected by the interceptor.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
