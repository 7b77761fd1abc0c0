//go:build unit

package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithHeader(t *testing.T) {
	configured := []string{"Origin", "idempotency-key"}

	got := withHeader(configured, headerIdempotencyKey, "Authorization")

	assert.Equal(t, []string{"Origin", "idempotency-key", "Authorization"}, got)
	assert.Equal(t, []string{"Origin", "idempotency-key"}, configured, "input is not modified")
	assert.Equal(t, []string{headerLocation}, withHeader(nil, headerLocation))
}
