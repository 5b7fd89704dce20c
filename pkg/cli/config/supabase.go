package config

import (
	"context"
	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository/postgres"
	"github.com/urfave/cli/v3"
)

// Supabase configures the platform-auth session variant: a Postgres
// connection string for the profile store and the project JWT secret
// that signs platform access tokens.
type Supabase struct {
	databaseURL string                  `masq:"secret"`
	jwtSecret   types.SupabaseJWTSecret `masq:"secret"`
}

func (x *Supabase) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "supabase-db-url",
			Usage:       "Supabase Postgres connection string (optional)",
			Category:    "Supabase",
			Destination: &x.databaseURL,
			Sources:     cli.EnvVars("FAASR_SUPABASE_DB_URL"),
		},
		&cli.StringFlag{
			Name:        "supabase-jwt-secret",
			Usage:       "Supabase project JWT secret",
			Category:    "Supabase",
			Destination: (*string)(&x.jwtSecret),
			Sources:     cli.EnvVars("FAASR_SUPABASE_JWT_SECRET"),
		},
	}
}

func (x *Supabase) Enabled() bool {
	return x.databaseURL != "" && x.jwtSecret != ""
}

func (x *Supabase) NewRepository(ctx context.Context) (interfaces.ProfileRepository, error) {
	return postgres.New(ctx, x.databaseURL)
}

func (x *Supabase) JWTSecret() types.SupabaseJWTSecret {
	return x.jwtSecret
}

func (x Supabase) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("databaseURL.len", len(x.databaseURL)),
		slog.Int("jwtSecret.len", len(x.jwtSecret)),
	)
}
