package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"persistence": map[string]any{
			"batchFetchSize": 100,
		},
		"redis": map[string]any{
			"idempotencyTtl": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PERSISTENCE_BATCHFETCHSIZE", want: "persistence.batchFetchSize"},
		{envKey: "REDIS_IDEMPOTENCYTTL", want: "redis.idempotencyTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	if got := normalizeToken("Batch-Fetch_Size"); got != "batchfetchsize" {
		t.Fatalf("normalizeToken = %q", got)
	}
}
