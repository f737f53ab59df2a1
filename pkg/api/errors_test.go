package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionloop/groundcontrol/pkg/auth"
	"github.com/missionloop/groundcontrol/pkg/capability"
	"github.com/missionloop/groundcontrol/pkg/lease"
	"github.com/missionloop/groundcontrol/pkg/secrets"
	"github.com/missionloop/groundcontrol/pkg/services"
)

func TestTranslateSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"reason error passes through", services.Reason(services.ReasonRateLimited, "slow down"), services.ReasonRateLimited},
		{"wrapped reason error", fmt.Errorf("intake: %w", services.Reason(services.ReasonPayloadTooLarge, "big")), services.ReasonPayloadTooLarge},
		{"denial error", &capability.DenialError{Reason: capability.DeniedDepthExceeded}, capability.DeniedDepthExceeded},
		{"lease held", lease.ErrHeldByOther, services.ReasonLeaseHeld},
		{"lease expired", lease.ErrExpired, services.ReasonLeaseExpiredOrPreempted},
		{"lease lock unavailable", lease.ErrLockUnavailable, services.ReasonHeartbeatRateLimited},
		{"owner exists", auth.ErrOwnerExists, services.ReasonOwnerExists},
		{"bad credentials", auth.ErrInvalidCredentials, reasonInvalidCredentials},
		{"bad token", auth.ErrInvalidToken, reasonInvalidToken},
		{"vault off", secrets.ErrVaultNotConfigured, services.ReasonSecretsVaultNotConfigured},
		{"vault forbidden", secrets.ErrForbidden, reasonVaultForbidden},
		{"token missing", capability.ErrTokenNotFound, services.ReasonNotFound},
		{"opaque error", errors.New("pq: connection reset"), services.ReasonInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, translate(tt.err).Code)
		})
	}
}

func TestReasonStatusTable(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, reasonStatus[services.ReasonRateLimited])
	assert.Equal(t, http.StatusRequestEntityTooLarge, reasonStatus[services.ReasonPayloadTooLarge])
	assert.Equal(t, http.StatusUnprocessableEntity, reasonStatus[services.ReasonArtifactNotFound])
	assert.Equal(t, http.StatusNotImplemented, reasonStatus[services.ReasonSecretsVaultNotConfigured])
	assert.Equal(t, http.StatusForbidden, reasonStatus[capability.DeniedCycle])
	assert.Equal(t, http.StatusConflict, reasonStatus[services.ReasonIdempotencyConflict])

	// The opaque internal error never leaks a message.
	re := translate(errors.New("secret dsn inside"))
	assert.NotContains(t, re.Message, "dsn")
}
