package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-pass-web/models"
)

const (
	blobVersion byte = 1

	macSize = sha512.Size
	// maxDecodedSize bounds decompression of hostile blobs.
	maxDecodedSize = 64 << 20
)

// requiredEntryFields must all be present for an incoming entry to be kept.
var requiredEntryFields = []string{"timestamp", "id", "username", "password", "website", "notes"}

// blobCodec is the private implementation of [BlobCodec].
//
// Blob layout (before base64):
//
//	version(1) ‖ salt(16) ‖ iv(16) ‖ AES-256-CBC(zstd(json)) ‖ HMAC-SHA-512
//
// The MAC covers everything before it (encrypt-then-MAC).
type blobCodec struct {
	keys    keyChain
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewBlobCodec constructs a [BlobCodec] deriving keys with params.
func NewBlobCodec(params KDFParams) (BlobCodec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &blobCodec{
		keys:    newKeyChain(params),
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Encode implements [BlobCodec].
func (c *blobCodec) Encode(snapshot models.UserDataSnapshot, key string) (string, error) {
	if snapshot.Entries == nil {
		snapshot.Entries = []models.Entry{}
	}
	snapshot.Schema = models.SchemaVersion

	plaintext, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return c.seal(plaintext, key)
}

// seal compresses, encrypts and signs plaintext.
func (c *blobCodec) seal(plaintext []byte, key string) (string, error) {
	compressed := c.encoder.EncodeAll(plaintext, nil)

	salt, err := c.keys.generateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	encKey, macKey := c.keys.deriveKeys(key, salt)

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(compressed, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	blob := make([]byte, 0, 1+saltSize+aes.BlockSize+len(ciphertext)+macSize)
	blob = append(blob, blobVersion)
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)
	blob = append(blob, sign(macKey, blob)...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decode implements [BlobCodec].
func (c *blobCodec) Decode(encoded string, key string) (models.UserDataSnapshot, error) {
	plaintext, err := c.open(encoded, key)
	if err != nil {
		return models.UserDataSnapshot{}, err
	}
	return parseSnapshot(plaintext)
}

// open verifies and decrypts a blob produced by seal.
func (c *blobCodec) open(encoded string, key string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrDecodeFailure, err)
	}

	const header = 1 + saltSize + aes.BlockSize
	if len(blob) < header+aes.BlockSize+macSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecodeFailure)
	}
	if blob[0] != blobVersion {
		return nil, fmt.Errorf("%w: unknown blob version %d", ErrDecodeFailure, blob[0])
	}

	signed, mac := blob[:len(blob)-macSize], blob[len(blob)-macSize:]
	salt := signed[1 : 1+saltSize]
	iv := signed[1+saltSize : header]
	ciphertext := signed[header:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block aligned", ErrDecodeFailure)
	}

	encKey, macKey := c.keys.deriveKeys(key, salt)
	if !hmac.Equal(mac, sign(macKey, signed)) {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecodeFailure)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrDecodeFailure, err)
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	compressed, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	plaintext, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %v", ErrDecodeFailure, err)
	}
	return plaintext, nil
}

// parseSnapshot reads the decrypted JSON. Only the whitelisted fields are
// taken over; entries that miss any required field are skipped.
func parseSnapshot(plaintext []byte) (models.UserDataSnapshot, error) {
	if !gjson.ValidBytes(plaintext) {
		return models.UserDataSnapshot{}, fmt.Errorf("%w: invalid json", ErrDecodeFailure)
	}

	doc := gjson.ParseBytes(plaintext)
	schema := doc.Get("schema")
	if !schema.Exists() || schema.Int() != models.SchemaVersion {
		return models.UserDataSnapshot{}, fmt.Errorf("%w: schema %s", ErrUnsupportedSchema, schema.Raw)
	}

	snapshot := models.UserDataSnapshot{
		Schema:    models.SchemaVersion,
		Timestamp: doc.Get("timestamp").Int(),
		Entries:   []models.Entry{},
	}

	doc.Get("entries").ForEach(func(_, value gjson.Result) bool {
		if !hasRequiredFields(value) {
			return true
		}
		var e models.Entry
		if err := json.Unmarshal([]byte(value.Raw), &e); err != nil {
			return true
		}
		snapshot.Entries = append(snapshot.Entries, e)
		return true
	})

	return snapshot, nil
}

func hasRequiredFields(value gjson.Result) bool {
	if !value.IsObject() {
		return false
	}
	for _, field := range requiredEntryFields {
		if !value.Get(field).Exists() {
			return false
		}
	}
	return true
}

func sign(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
