package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "zero config", cfg: StructuredConfig{}},
		{name: "port out of range", cfg: StructuredConfig{Port: "0"}, wantErr: ErrInvalidServerConfigs},
		{name: "address without port", cfg: StructuredConfig{Server: Server{HTTPAddress: "localhost"}}, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", cfg: StructuredConfig{Server: Server{RequestTimeout: -time.Second}}, wantErr: ErrInvalidServerConfigs},
		{name: "negative rate", cfg: StructuredConfig{Server: Server{RateLimit: -1}}, wantErr: ErrInvalidServerConfigs},
		{name: "negative formats limit", cfg: StructuredConfig{App: App{InfoFormatsLimit: -1}}, wantErr: ErrInvalidAppConfigs},
		{name: "proxy without scheme", cfg: StructuredConfig{Extractor: Extractor{ProxyURL: "127.0.0.1:3128"}}, wantErr: ErrInvalidExtractorConfigs},
		{name: "negative ttl", cfg: StructuredConfig{Storage: Storage{Cache: Cache{TTL: -time.Minute}}}, wantErr: ErrInvalidStorageConfigs},
		{name: "negative cleanup interval", cfg: StructuredConfig{Workers: Workers{CacheCleanupInterval: -time.Minute}}, wantErr: ErrInvalidWorkerConfigs},
		{name: "valid proxy", cfg: StructuredConfig{Extractor: Extractor{ProxyURL: "socks5://127.0.0.1:1080"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_ApplyDefaults_RateBurst(t *testing.T) {
	cfg := StructuredConfig{Server: Server{RateLimit: 2.5}}
	cfg.applyDefaults()

	assert.Equal(t, 3, cfg.Server.RateBurst)
}

func TestStructuredConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := StructuredConfig{
		App:     App{LogLevel: "error", InfoFormatsLimit: 10},
		Storage: Storage{Cache: Cache{TTL: time.Hour}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 10, cfg.App.InfoFormatsLimit)
	assert.Equal(t, time.Hour, cfg.Storage.Cache.TTL)
	assert.Zero(t, cfg.Server.RateBurst)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:3000", RequestTimeout: time.Second},
		Args:    []string{"health"},
	}
	assert.NoError(t, valid.validate())

	noAddress := valid
	noAddress.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noArgs := valid
	noArgs.Args = nil
	assert.ErrorIs(t, noArgs.validate(), ErrNoClientCommand)
}
