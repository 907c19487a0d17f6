// Package constants holds values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types.
const (
	EventOrderPlaced           = "order.placed"
	EventOrderCancelled        = "order.cancelled"
	EventOrderDeliveryAdvanced = "order.delivery_advanced"
)

// HeaderIdempotencyKey carries the client supplied key for order placement.
const HeaderIdempotencyKey = "Idempotency-Key"

// IdempotencyScopeOrder namespaces idempotency keys used by order placement.
const IdempotencyScopeOrder = "order"
