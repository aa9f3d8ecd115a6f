// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize   = 16
	cipherKey  = 32
	macKeySize = 32
)

// KDFParams are the Argon2id tuning parameters used to stretch the
// encryption secret. They are not stored in the blob, so every client that
// shares blobs must use the same values.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
	}
}

// keyChain derives the cipher and MAC keys of one blob.
type keyChain struct {
	params KDFParams
}

func newKeyChain(params KDFParams) keyChain {
	if params.Time == 0 || params.Memory == 0 || params.Threads == 0 {
		params = DefaultKDFParams()
	}
	return keyChain{params: params}
}

// generateSalt reads a fresh salt from the OS CSPRNG.
func (k keyChain) generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// deriveKeys stretches secret with Argon2id and splits the output into an
// AES-256 key and an HMAC key. Using distinct halves keeps the two
// primitives independent.
func (k keyChain) deriveKeys(secret string, salt []byte) (encKey, macKey []byte) {
	material := argon2.IDKey(
		[]byte(secret),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		cipherKey+macKeySize,
	)
	return material[:cipherKey], material[cipherKey:]
}
