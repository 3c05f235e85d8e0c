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
		"session": map[string]any{
			"cookieName": "vc_session",
		},
		"cart": map[string]any{
			"cookieMaxAge": "720h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "CART_COOKIEMAXAGE", want: "cart.cookieMaxAge"},
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

func TestApplyCookieDefaults(t *testing.T) {
	cfg := &Config{}
	applyCookieDefaults(cfg)

	if cfg.Session.CookieName != defaultSessionCookieName {
		t.Fatalf("session cookie name = %q, want %q", cfg.Session.CookieName, defaultSessionCookieName)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("session ttl = %v, want %v", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.Cart.CookieName != defaultCartCookieName {
		t.Fatalf("cart cookie name = %q, want %q", cfg.Cart.CookieName, defaultCartCookieName)
	}
	if cfg.Cart.CookieMaxAge != defaultCartCookieMaxAge {
		t.Fatalf("cart cookie max age = %v, want %v", cfg.Cart.CookieMaxAge, defaultCartCookieMaxAge)
	}
}
