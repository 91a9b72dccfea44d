// Package constants collects configuration values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Donation event types carried on the event bus.
const (
	EventDonationCreated   = "donation.created"
	EventDonationClaimed   = "donation.claimed"
	EventDonationCompleted = "donation.completed"
	EventDonationCancelled = "donation.cancelled"
)

// Push topic naming.
const (
	DefaultNGOTopic = "ngo-donations"
	UserTopicPrefix = "user-"
)

// Upload defaults.
const (
	DefaultUploadPrefix  = "/uploads"
	DefaultMaxImageBytes = 5 * 1024 * 1024
)

// Pagination defaults.
const (
	DefaultPageSize         = 20
	DefaultActivityPageSize = 50
	RecentDonationsLimit    = 10
	TrendMonths             = 6
)
