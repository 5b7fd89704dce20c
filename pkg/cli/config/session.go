package config

import (
	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/controller/server"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Session configures the stateless-cookie session variant.
type Session struct {
	secret       types.SessionSecret `masq:"secret"`
	secureCookie bool
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-secret",
			Usage:       "HMAC secret for the signed session cookie",
			Category:    "Session",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("FAASR_SESSION_SECRET"),
		},
		&cli.BoolFlag{
			Name:        "session-secure-cookie",
			Usage:       "Set Secure attribute on the session cookie",
			Category:    "Session",
			Value:       true,
			Destination: &x.secureCookie,
			Sources:     cli.EnvVars("FAASR_SESSION_SECURE_COOKIE"),
		},
	}
}

func (x *Session) Enabled() bool {
	return x.secret != ""
}

func (x *Session) NewProvider() (*server.CookieSessionProvider, error) {
	return server.NewCookieSessionProvider(x.secret, x.secureCookie)
}

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Secret.len", len(x.secret)),
		slog.Bool("secureCookie", x.secureCookie),
	)
}
