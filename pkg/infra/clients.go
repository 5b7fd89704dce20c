package infra

import (
	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
)

// Clients bundles the external collaborators. Everything is injected by
// constructor options; tests swap in mocks without shared mutable state.
type Clients struct {
	githubApp   interfaces.GitHubApp
	profileRepo interfaces.ProfileRepository
	bqClient    interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) ProfileRepository() interfaces.ProfileRepository {
	return x.profileRepo
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithProfileRepository(repo interfaces.ProfileRepository) Option {
	return func(x *Clients) {
		x.profileRepo = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
