package config

import (
	"testing"
	"time"

	"foodbridge/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

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
		"secretKey": map[string]any{
			"access": "",
		},
		"upload": map[string]any{
			"bucketUrl":    "",
			"maxSizeBytes": 0,
		},
		"auth": map[string]any{
			"tokenTTL": "168h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "UPLOAD_BUCKETURL", want: "upload.bucketUrl"},
		{envKey: "UPLOAD_MAXSIZEBYTES", want: "upload.maxSizeBytes"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, constants.DefaultUploadPrefix, cfg.Upload.PublicPrefix)
	assert.EqualValues(t, constants.DefaultMaxImageBytes, cfg.Upload.MaxSizeBytes)
	assert.Equal(t, constants.PubSubProviderNoop, cfg.PubSub.Provider)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{TokenTTL: time.Hour, MinPasswordLength: 10},
		Upload: &UploadConfig{BucketURL: "mem://", PublicPrefix: "/img", MaxSizeBytes: 1024},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "mem://", cfg.Upload.BucketURL)
	assert.Equal(t, "/img", cfg.Upload.PublicPrefix)
	assert.EqualValues(t, 1024, cfg.Upload.MaxSizeBytes)
}
