package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubUserID        int64
	CommitSHA           string
	ForkStatus          string
	RegistrationState   string
)

const (
	ForkStatusExists  ForkStatus = "exists"
	ForkStatusCreated ForkStatus = "created"
)

const (
	RegistrationPending RegistrationState = "pending"
	RegistrationRunning RegistrationState = "running"
	RegistrationSuccess RegistrationState = "success"
	RegistrationFailed  RegistrationState = "failed"
)

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
