// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/simple-vault/models"
)

// ErrNoData is returned by DecryptEnvelope for every failure mode: wrong
// passphrase, corrupted ciphertext, truncated blob, malformed header or
// wrong format tag. Import tooling treats all of them identically, so the
// error deliberately carries no detail that could act as a padding oracle.
var ErrNoData = errors.New("no data")

const (
	saltSize = 16
	keySize  = 32 // 256 bits
)

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct {
	// iterations is the PBKDF2 iteration count used for encryption. The
	// on-disk default is models.EnvelopeIterations; tests lower it to keep
	// round-trip suites fast.
	iterations int

	now func() time.Time
}

// NewEnvelopeService constructs an [EnvelopeService] with the documented
// PBKDF2-SHA256 iteration count (100 000) and a fresh random salt per export.
func NewEnvelopeService() EnvelopeService {
	return &envelopeService{
		iterations: models.EnvelopeIterations,
		now:        time.Now,
	}
}

// deriveKey stretches passphrase into a 256-bit AES key.
func (e *envelopeService) deriveKey(passphrase string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iterations, keySize, sha256.New)
}

// EncryptPayload implements [EnvelopeService]. The envelope's data field is
// Base64 (standard encoding) of the blob: salt (16 bytes) ‖ nonce (12 bytes)
// ‖ ciphertext. The header stays unencrypted; only the ciphertext carries
// account secrets.
func (e *envelopeService) EncryptPayload(payload models.EncryptedPayload, passphrase string) (*models.CryptoEnvelope, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := e.deriveKey(passphrase, salt, e.iterations)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// blob = salt || nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return &models.CryptoEnvelope{
		Header: models.EnvelopeHeader{
			Version:       models.EnvelopeVersion,
			Format:        string(models.FormatEncrypted),
			Encryption:    models.EnvelopeEncryption,
			KeyDerivation: models.EnvelopeKeyDerivation,
			Iterations:    e.iterations,
			ExportedAt:    e.now().UTC().Format(time.RFC3339),
		},
		Data: base64.StdEncoding.EncodeToString(blob),
	}, nil
}

// DecryptEnvelope implements [EnvelopeService]. It never propagates the
// underlying cause: every failure collapses into ErrNoData.
func (e *envelopeService) DecryptEnvelope(envelopeJSON []byte, passphrase string) (*models.EncryptedPayload, error) {
	var envelope models.CryptoEnvelope
	if err := json.Unmarshal(envelopeJSON, &envelope); err != nil {
		return nil, ErrNoData
	}

	if envelope.Header.Format != string(models.FormatEncrypted) ||
		envelope.Header.Encryption != models.EnvelopeEncryption ||
		envelope.Header.KeyDerivation != models.EnvelopeKeyDerivation ||
		envelope.Header.Iterations <= 0 {
		return nil, ErrNoData
	}

	blob, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return nil, ErrNoData
	}

	if len(blob) < saltSize {
		return nil, ErrNoData
	}
	key := e.deriveKey(passphrase, blob[:saltSize], envelope.Header.Iterations)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrNoData
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrNoData
	}

	if len(blob) < saltSize+gcm.NonceSize() {
		return nil, ErrNoData
	}
	nonce := blob[saltSize : saltSize+gcm.NonceSize()]
	ciphertext := blob[saltSize+gcm.NonceSize():]

	// Wrong passphrase and corruption both surface here as a tag mismatch.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrNoData
	}

	var payload models.EncryptedPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, ErrNoData
	}
	if payload.Format != string(models.FormatEncrypted) {
		return nil, ErrNoData
	}

	return &payload, nil
}

// GenerateStorageKey implements [EnvelopeService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (e *envelopeService) GenerateStorageKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// EncryptBytes implements [EnvelopeService]. A random 12-byte nonce is
// prepended to the ciphertext so that DecryptBytes can locate it:
// blob = nonce ‖ ciphertext.
func (e *envelopeService) EncryptBytes(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// DecryptBytes implements [EnvelopeService]. The blob must be at least as
// long as the GCM nonce (12 bytes). Returns an error if the blob is too
// short, the key is wrong, or the ciphertext is corrupted
// (authentication-tag mismatch).
func (e *envelopeService) DecryptBytes(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
