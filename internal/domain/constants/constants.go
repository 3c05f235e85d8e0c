// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub config section.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
