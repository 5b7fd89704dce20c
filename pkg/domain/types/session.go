package types

import "log/slog"

type (
	// SessionSecret signs the stateless session cookie (HS256).
	SessionSecret string

	// SupabaseJWTSecret verifies platform-issued access tokens (HS256).
	SupabaseJWTSecret string

	// PlatformUserID is the authenticated user ID issued by the platform
	// auth service (the `sub` claim of a Supabase access token).
	PlatformUserID string
)

func (x SessionSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionSecret) String() string {
	return "***********"
}

func (x SupabaseJWTSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SupabaseJWTSecret) String() string {
	return "***********"
}
