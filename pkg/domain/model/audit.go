package model

import "time"

// RegistrationEvent is one audit row describing an installation or
// upload. Written to BigQuery when the audit sink is configured.
type RegistrationEvent struct {
	EventType      string
	Timestamp      time.Time
	InstallationID int64
	Login          string
	RepoName       string
	FileName       string
	CommitSHA      string
}

// RegistrationEventRawRecord flattens the timestamp to microseconds for
// the BigQuery row.
type RegistrationEventRawRecord struct {
	RegistrationEvent
	Timestamp int64
}
