package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"deal-marketplace/internal/pkg/errs"
)

const SignatureHeader = "Payment-Signature"

var (
	ErrMissingSignature = errs.NewAuthentication("missing signature")
	ErrInvalidSignature = errs.NewAuthentication("webhook signature invalid")
	ErrSignatureExpired = errs.NewAuthentication("webhook signature timestamp outside tolerance")
)

// Verifier checks "t=<unix>,v1=<hex>" headers where v1 is
// HMAC-SHA256(secret, "<t>.<raw payload>").
type Verifier struct {
	secret    []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), tolerance: tolerance}
}

func (v *Verifier) Verify(payload []byte, header string, now time.Time) error {
	if header == "" || len(v.secret) == 0 {
		return ErrMissingSignature
	}

	ts, sigs, err := parseHeader(header)
	if err != nil {
		return err
	}

	if v.tolerance > 0 {
		age := now.Sub(time.Unix(ts, 0))
		if age < 0 {
			age = -age
		}
		if age > v.tolerance {
			return ErrSignatureExpired
		}
	}

	expected := v.mac(ts, payload)
	for _, s := range sigs {
		got, derr := hex.DecodeString(s)
		if derr != nil {
			continue
		}
		if hmac.Equal(expected, got) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// Sign produces a header value for payload at ts.
func (v *Verifier) Sign(payload []byte, ts time.Time) string {
	unix := ts.Unix()
	return "t=" + strconv.FormatInt(unix, 10) + ",v1=" + hex.EncodeToString(v.mac(unix, payload))
}

func (v *Verifier) mac(ts int64, payload []byte) []byte {
	m := hmac.New(sha256.New, v.secret)
	m.Write([]byte(strconv.FormatInt(ts, 10)))
	m.Write([]byte("."))
	m.Write(payload)
	return m.Sum(nil)
}

func parseHeader(header string) (int64, []string, error) {
	var (
		ts    int64
		hasTS bool
		sigs  []string
	)
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidSignature
			}
			ts, hasTS = n, true
		case "v1":
			sigs = append(sigs, val)
		}
	}
	if !hasTS || len(sigs) == 0 {
		return 0, nil, ErrInvalidSignature
	}
	return ts, sigs, nil
}
