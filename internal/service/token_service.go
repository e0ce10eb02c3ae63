package service

import (
	"crypto/hmac"
	"fmt"
	"strconv"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// DefaultFreshnessWindow bounds replay exposure: tokens older than this are
// rejected regardless of digest correctness.
const DefaultFreshnessWindow = 24 * time.Hour

// SignatureTokenService implements ports.TokenService: generation and
// validation of the opaque acknowledgment token.
type SignatureTokenService struct {
	digest    ports.DigestService
	codec     *PayloadCodec
	freshness time.Duration
	log       zerolog.Logger
}

// NewSignatureTokenService creates a token service. A non-positive freshness
// window falls back to the 24h default.
func NewSignatureTokenService(digest ports.DigestService, codec *PayloadCodec, freshness time.Duration, log zerolog.Logger) *SignatureTokenService {
	if freshness <= 0 {
		freshness = DefaultFreshnessWindow
	}
	return &SignatureTokenService{
		digest:    digest,
		codec:     codec,
		freshness: freshness,
		log:       log,
	}
}

// Generate issues a token for the given acknowledgment and signer. Pure with
// respect to external state; persisting the token next to the acknowledgment
// is the caller's job.
func (s *SignatureTokenService) Generate(ack *domain.AcknowledgmentContext, signer *domain.Signer) string {
	payload := s.codec.BuildPayload(ack, signer)
	digest := s.digest.Digest([]byte(payload))
	return s.codec.EncodeToken(digest, time.Now(), signer.ID, ack.AssetID)
}

// Validate checks a token against the acknowledgment and signer, failing
// closed on any defect. The checks run in order and short-circuit: structural
// decode, signer identity, asset identity, freshness window, digest match.
func (s *SignatureTokenService) Validate(token string, ack *domain.AcknowledgmentContext, signer *domain.Signer) bool {
	decoded, err := s.codec.DecodeToken(token)
	if err != nil {
		s.log.Warn().Msg("invalid signature token format")
		return false
	}

	if decoded.SignerID != strconv.FormatInt(signer.ID, 10) {
		s.log.Warn().Msg("signature token signer mismatch")
		return false
	}

	if decoded.AssetID != strconv.FormatInt(ack.AssetID, 10) {
		s.log.Warn().Msg("signature token asset mismatch")
		return false
	}

	signedAt, err := decoded.ParseTimestamp()
	if err != nil {
		s.log.Warn().Msg("invalid signature token timestamp")
		return false
	}
	if signedAt.Before(time.Now().Add(-s.freshness)) {
		s.log.Warn().Time("signed_at", signedAt).Msg("signature token outside freshness window")
		return false
	}

	payload := s.codec.BuildPayload(ack, signer)
	expected := s.digest.Digest([]byte(payload))
	return hmac.Equal([]byte(expected), []byte(decoded.Digest))
}

// StorageHash mints a unique opaque storage key over
// rawSignature|assetID|signerID|currentMillis.
//
// This digest deliberately embeds the wall clock: two calls with identical
// inputs at different instants produce different outputs. It can never be
// recomputed for verification and must not be confused with the token digest
// produced by Generate; its only job is to give each stored signature a
// unique identifier.
func (s *SignatureTokenService) StorageHash(rawSignature string, assetID, signerID int64) string {
	data := fmt.Sprintf("%s|%d|%d|%d", rawSignature, assetID, signerID, time.Now().UnixMilli())
	return s.digest.Digest([]byte(data))
}
