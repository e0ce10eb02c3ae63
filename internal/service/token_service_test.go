package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(freshness time.Duration) *SignatureTokenService {
	return NewSignatureTokenService(NewSHA256DigestService(), NewPayloadCodec(), freshness, zerolog.Nop())
}

func TestTokenService_GenerateValidate_RoundTrip(t *testing.T) {
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()

	token := svc.Generate(ack, signer)
	require.NotEmpty(t, token)

	assert.True(t, svc.Validate(token, ack, signer))
}

func TestTokenService_Generate_TokensDifferOverTime(t *testing.T) {
	// Same inputs at different instants give different tokens (timestamp
	// rides in the token) yet both validate.
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()

	a := svc.Generate(ack, signer)
	time.Sleep(2 * time.Millisecond)
	b := svc.Generate(ack, signer)

	assert.NotEqual(t, a, b)
	assert.True(t, svc.Validate(a, ack, signer))
	assert.True(t, svc.Validate(b, ack, signer))
}

func TestTokenService_Validate_WrongSigner(t *testing.T) {
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()
	token := svc.Generate(ack, signer)

	other := testSigner()
	other.ID = 99

	assert.False(t, svc.Validate(token, ack, other))
}

func TestTokenService_Validate_WrongAsset(t *testing.T) {
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()
	token := svc.Generate(ack, signer)

	otherAck := testAck()
	otherAck.AssetID = 1000

	assert.False(t, svc.Validate(token, otherAck, signer))
}

func TestTokenService_Validate_ContextDrift(t *testing.T) {
	// The acknowledgment changed after signing; digest recomputation over the
	// current context no longer matches what was signed.
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()
	token := svc.Generate(ack, signer)

	changed := testAck()
	changed.SerialNumber = "SN-REISSUED"
	assert.False(t, svc.Validate(token, changed, signer), "serial change must invalidate")

	changed = testAck()
	changed.IssuedTo = "Somebody Else"
	assert.False(t, svc.Validate(token, changed, signer), "holder change must invalidate")

	changed = testAck()
	changed.Notes = "amended notes"
	assert.False(t, svc.Validate(token, changed, signer), "notes change must invalidate")

	driftedSigner := testSigner()
	driftedSigner.Email = "new-address@example.com"
	assert.False(t, svc.Validate(token, ack, driftedSigner), "email change must invalidate")
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()

	assert.False(t, svc.Validate("", ack, signer))
	assert.False(t, svc.Validate("not-base64!!!", ack, signer))
	assert.False(t, svc.Validate(base64.StdEncoding.EncodeToString([]byte("only|three|fields")), ack, signer))
}

func TestTokenService_Validate_TamperedDigest(t *testing.T) {
	svc := newTokenService(0)
	ack, signer := testAck(), testSigner()
	token := svc.Generate(ack, signer)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	parts := strings.SplitN(string(raw), "|", 2)
	tampered := base64.StdEncoding.EncodeToString([]byte("AAAA" + parts[0][4:] + "|" + parts[1]))

	assert.False(t, svc.Validate(tampered, ack, signer))
}

func TestTokenService_Validate_FreshnessWindow(t *testing.T) {
	svc := newTokenService(24 * time.Hour)
	codec := NewPayloadCodec()
	digest := NewSHA256DigestService()
	ack, signer := testAck(), testSigner()

	payload := codec.BuildPayload(ack, signer)
	d := digest.Digest([]byte(payload))

	t.Run("just inside window accepted", func(t *testing.T) {
		ts := time.Now().Add(-23*time.Hour - 59*time.Minute)
		token := codec.EncodeToken(d, ts, signer.ID, ack.AssetID)
		assert.True(t, svc.Validate(token, ack, signer))
	})

	t.Run("just outside window rejected", func(t *testing.T) {
		ts := time.Now().Add(-24*time.Hour - time.Second)
		token := codec.EncodeToken(d, ts, signer.ID, ack.AssetID)
		assert.False(t, svc.Validate(token, ack, signer))
	})

	t.Run("unparseable timestamp rejected", func(t *testing.T) {
		raw := d + "|yesterday|5|42"
		token := base64.StdEncoding.EncodeToString([]byte(raw))
		assert.False(t, svc.Validate(token, ack, signer))
	})
}

func TestTokenService_Validate_CustomFreshness(t *testing.T) {
	svc := newTokenService(time.Hour)
	codec := NewPayloadCodec()
	digest := NewSHA256DigestService()
	ack, signer := testAck(), testSigner()

	payload := codec.BuildPayload(ack, signer)
	d := digest.Digest([]byte(payload))

	fresh := codec.EncodeToken(d, time.Now().Add(-30*time.Minute), signer.ID, ack.AssetID)
	stale := codec.EncodeToken(d, time.Now().Add(-2*time.Hour), signer.ID, ack.AssetID)

	assert.True(t, svc.Validate(fresh, ack, signer))
	assert.False(t, svc.Validate(stale, ack, signer))
}

func TestTokenService_StorageHash_Unique(t *testing.T) {
	svc := newTokenService(0)

	a := svc.StorageHash("raw-signature", 42, 5)
	time.Sleep(2 * time.Millisecond) // millisecond clock must tick
	b := svc.StorageHash("raw-signature", 42, 5)

	assert.NotEqual(t, a, b, "storage hash embeds the clock and must not repeat")
	assert.Len(t, a, 44)
}

func TestTokenService_HMACVariant(t *testing.T) {
	keyed := NewSignatureTokenService(NewHMACDigestService("secret"), NewPayloadCodec(), 0, zerolog.Nop())
	unkeyed := newTokenService(0)
	ack, signer := testAck(), testSigner()

	token := keyed.Generate(ack, signer)

	assert.True(t, keyed.Validate(token, ack, signer))
	// An unkeyed validator must not accept a keyed token and vice versa.
	assert.False(t, unkeyed.Validate(token, ack, signer))
	assert.False(t, keyed.Validate(unkeyed.Generate(ack, signer), ack, signer))
}
