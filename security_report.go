package genroauth

import (
	"time"

	"github.com/genropy/genro-auth/storage"
)

type SecurityReport struct {
	AccessTTL                time.Duration
	RefreshTTL               time.Duration
	Backend                  string
	RedisPrefix              string
	DigestAlgorithm          string
	TokenEntropyBits         int
	RefreshRotationEnforced  bool
	RefreshReuseDetection    bool
	RevocationCascades       bool
	AuditEnabled             bool
	AuditDropIfFull          bool
	MetricsEnabled           bool
	LatencyHistogramsEnabled bool
}

func (e *Engine) SecurityReport() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	backendKind := "custom"
	switch e.backend.(type) {
	case *storage.MemoryBackend:
		backendKind = "memory"
	case *storage.RedisBackend:
		backendKind = "redis"
	}

	return SecurityReport{
		AccessTTL:                e.config.AccessTTL,
		RefreshTTL:               e.config.RefreshTTL,
		Backend:                  backendKind,
		RedisPrefix:              e.config.Storage.RedisPrefix,
		DigestAlgorithm:          "sha256",
		TokenEntropyBits:         256,
		RefreshRotationEnforced:  true,
		RefreshReuseDetection:    true,
		RevocationCascades:       false,
		AuditEnabled:             e.config.Audit.Enabled,
		AuditDropIfFull:          e.config.Audit.DropIfFull,
		MetricsEnabled:           e.config.Metrics.Enabled,
		LatencyHistogramsEnabled: e.config.Metrics.EnableLatencyHistograms,
	}
}
