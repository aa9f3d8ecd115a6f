package crypto

import "github.com/MKhiriev/go-pass-web/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_codec_mock.go -package=mock

// BlobCodec turns a snapshot into the opaque text stored locally and
// remotely, and back.
//
// The key passed to both methods is the encryption secret produced by
// [EncryptionKey]. Encode never returns the same blob twice for the same
// input because salt and IV are random.
type BlobCodec interface {
	// Encode serializes, compresses and encrypts the snapshot.
	Encode(snapshot models.UserDataSnapshot, key string) (string, error)

	// Decode reverses Encode. Every failure wraps ErrDecodeFailure except a
	// schema mismatch, which wraps ErrUnsupportedSchema. Entries missing a
	// required field are dropped without error.
	Decode(blob string, key string) (models.UserDataSnapshot, error)
}
