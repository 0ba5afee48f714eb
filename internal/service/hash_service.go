package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"irispay/internal/core/ports"
)

// SHA256HashService implements ports.HashService with an unsalted SHA-256
// hex digest. The digest doubles as the credential lookup key, so it has to
// be deterministic; no secret or pepper distinguishes it from a generic
// content hash. This is a demo-grade stand-in for real biometric-template
// matching, not an authentication primitive.
type SHA256HashService struct{}

// NewSHA256HashService creates the digest service.
func NewSHA256HashService() *SHA256HashService {
	return &SHA256HashService{}
}

var _ ports.HashService = (*SHA256HashService)(nil)

// Digest returns the lowercase 64-character hex SHA-256 of the sample.
func (s *SHA256HashService) Digest(sample string) string {
	sum := sha256.Sum256([]byte(sample))
	return hex.EncodeToString(sum[:])
}

// Matches compares a raw sample against a stored digest in constant time.
func (s *SHA256HashService) Matches(sample string, digest string) bool {
	computed := s.Digest(sample)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
