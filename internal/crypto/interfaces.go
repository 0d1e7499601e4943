// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/simple-vault/models"

// EnvelopeService packages export payloads into the encrypted envelope
// format and unpacks them again for companion import tooling.
//
// Encryption sits on the export hot path; decryption is a standalone
// capability and must fail closed on any malformed or corrupted input.
type EnvelopeService interface {
	// EncryptPayload serializes payload to JSON and seals it into a
	// CryptoEnvelope under a key derived from passphrase.
	EncryptPayload(payload models.EncryptedPayload, passphrase string) (*models.CryptoEnvelope, error)

	// DecryptEnvelope parses envelopeJSON, derives the key from passphrase
	// and returns the decrypted inner payload. Any failure (malformed
	// envelope, wrong format tag, wrong passphrase, corrupted ciphertext or
	// authentication tag) yields ErrNoData, never partial plaintext.
	DecryptEnvelope(envelopeJSON []byte, passphrase string) (*models.EncryptedPayload, error)

	// GenerateStorageKey returns a fresh random 256-bit key for
	// encrypting scratch files at rest. The key is unrelated to any user
	// passphrase.
	GenerateStorageKey() ([]byte, error)

	// EncryptBytes seals plaintext with key using AES-256-GCM and returns
	// the blob nonce ‖ ciphertext.
	EncryptBytes(plaintext, key []byte) ([]byte, error)

	// DecryptBytes opens a blob produced by EncryptBytes.
	DecryptBytes(blob, key []byte) ([]byte, error)
}
