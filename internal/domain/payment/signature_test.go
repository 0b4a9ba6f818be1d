//go:build unit

package payment_test

import (
	"testing"
	"time"

	"deal-marketplace/internal/domain/payment"
	"deal-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	v := payment.NewVerifier("whsec_test", 5*time.Minute)
	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)

	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, v.Verify(body, v.Sign(body, now), now))
		require.NoError(t, v.Verify(body, v.Sign(body, now.Add(-4*time.Minute)), now))
	})

	t.Run("additional v1 entries are tolerated", func(t *testing.T) {
		header := v.Sign(body, now) + ",v1=deadbeef"
		require.NoError(t, v.Verify(body, header, now))
	})

	cases := []struct {
		name   string
		header string
		body   []byte
		errIs  error
	}{
		{"empty header", "", body, payment.ErrMissingSignature},
		{"no timestamp", "v1=abcd", body, payment.ErrInvalidSignature},
		{"no signature", "t=1773154800", body, payment.ErrInvalidSignature},
		{"bad timestamp", "t=soon,v1=abcd", body, payment.ErrInvalidSignature},
		{"non hex signature", "t=" + v.Sign(body, now)[2:12] + ",v1=zz", body, payment.ErrInvalidSignature},
		{"modified body", v.Sign(body, now), append([]byte{' '}, body...), payment.ErrInvalidSignature},
		{"too old", v.Sign(body, now.Add(-6*time.Minute)), body, payment.ErrSignatureExpired},
		{"too far ahead", v.Sign(body, now.Add(6*time.Minute)), body, payment.ErrSignatureExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Verify(tc.body, tc.header, now)
			require.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrAuthentication))
		})
	}

	t.Run("verifier without secret refuses everything", func(t *testing.T) {
		empty := payment.NewVerifier("", 0)
		require.ErrorIs(t, empty.Verify(body, v.Sign(body, now), now), payment.ErrMissingSignature)
	})
}

func TestParseEvent(t *testing.T) {
	ev, err := payment.ParseEvent([]byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1,"data":{"object":{"id":"pi_9"}}}`))
	require.NoError(t, err)
	assert.True(t, ev.Succeeded())
	assert.Equal(t, "pi_9", ev.PaymentReference())

	ev, err = payment.ParseEvent([]byte(`{"id":"evt_2","type":"charge.refunded"}`))
	require.NoError(t, err)
	assert.False(t, ev.Succeeded())
	assert.Empty(t, ev.PaymentReference())

	for _, raw := range []string{`not json`, `{"id":"evt_3"}`} {
		_, err := payment.ParseEvent([]byte(raw))
		require.ErrorIs(t, err, payment.ErrMalformedEvent)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	}
}
