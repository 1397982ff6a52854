package domain

import "time"

const (
	// DomainBytes and SecretBytes are the random byte counts behind the
	// hex-encoded subdomain label (8 chars) and bearer secret (128 chars).
	DomainBytes  = 4
	SecretBytes  = 64
	DomainLength = DomainBytes * 2
	SecretLength = SecretBytes * 2
)

const RecordTTL = 3600

const (
	DefaultRetryMaxAttempts    = 3
	DefaultRetryInitialDelayMs = 100
	DefaultRetryMaxDelaySec    = 30
	DefaultRetryMultiplier     = 2.0
)

var (
	DefaultRetryInitialDelay = DefaultRetryInitialDelayMs * time.Millisecond
	DefaultRetryMaxDelay     = DefaultRetryMaxDelaySec * time.Second
)
