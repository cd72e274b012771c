package service_test

import (
	"testing"

	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/stretchr/testify/assert"
)

func TestHashFingerprint_Deterministic(t *testing.T) {
	first := service.HashFingerprint("canvas:abc|webgl:def|tz:UTC")
	second := service.HashFingerprint("canvas:abc|webgl:def|tz:UTC")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // sha256 hex
}

func TestHashFingerprint_DistinctInputs(t *testing.T) {
	a := service.HashFingerprint("device-a")
	b := service.HashFingerprint("device-b")

	assert.NotEqual(t, a, b)
}

func TestHashFingerprint_EmptyInputAccepted(t *testing.T) {
	// Callers validate non-emptiness upstream; the hasher itself treats the
	// empty string like any other input.
	hash := service.HashFingerprint("")

	assert.NotEmpty(t, hash)
	assert.Len(t, hash, 64)
}
