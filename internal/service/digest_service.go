package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"asset-signature-service/internal/core/domain"
)

// SHA256DigestService implements ports.DigestService with plain SHA-256.
// This is the deployed scheme: an unkeyed digest, deterministic over the
// payload bytes alone. Anything that should influence the digest has to be an
// explicit payload field; the verifier rebuilds the payload from scratch.
type SHA256DigestService struct{}

// NewSHA256DigestService creates the default digest service.
func NewSHA256DigestService() *SHA256DigestService {
	return &SHA256DigestService{}
}

// Digest returns the standard-base64 SHA-256 of payload.
func (s *SHA256DigestService) Digest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Algorithm identifies the primitive for record metadata.
func (s *SHA256DigestService) Algorithm() domain.SignatureAlgorithm {
	return domain.AlgorithmSHA256
}

// HMACDigestService implements ports.DigestService with HMAC-SHA256 keyed by
// a server-held secret. Drop-in hardening for the unkeyed scheme: tokens
// become unforgeable without the key while the surrounding encode/compare
// pipeline stays unchanged. Still a deterministic pure function of the
// payload for a fixed key, so verification recomputes and matches.
type HMACDigestService struct {
	key []byte
}

// NewHMACDigestService creates a keyed digest service.
func NewHMACDigestService(key string) *HMACDigestService {
	return &HMACDigestService{key: []byte(key)}
}

// Digest returns the standard-base64 HMAC-SHA256 of payload.
func (s *HMACDigestService) Digest(payload []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Algorithm identifies the primitive for record metadata.
func (s *HMACDigestService) Algorithm() domain.SignatureAlgorithm {
	return domain.AlgorithmHMACSHA256
}
