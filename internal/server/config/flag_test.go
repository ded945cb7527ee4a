package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesSelectedFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9999",
		"-d", "postgres://flag/benford",
		"-s", "flagsecret",
		"-t", "30",
		"-b", "flagbucket",
		"-n", "nats://flag:4222",
		"-j", "flagsubject",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "postgres://flag/benford", cfg.DatabaseDSN)
	assert.Equal(t, "flagsecret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "flagbucket", cfg.S3Bucket)
	assert.Equal(t, "nats://flag:4222", cfg.NATSUrl)
	assert.Equal(t, "flagsubject", cfg.NATSSubject)
}

func Test_parseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "benfordapp", cfg.S3Bucket)
}
