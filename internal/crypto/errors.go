package crypto

import "errors"

var (
	// ErrDecodeFailure covers every way a blob can fail to open: bad base64,
	// authentication failure, bad padding, bad compression or bad JSON. With
	// a well-formed blob it almost always means a wrong password.
	ErrDecodeFailure = errors.New("decode failure")
	// ErrUnsupportedSchema is returned for a blob that decrypts fine but
	// carries a schema other than models.SchemaVersion.
	ErrUnsupportedSchema = errors.New("unsupported schema or corrupt data")
	// ErrEmptyPool is returned by GeneratePassword when no character class
	// is enabled.
	ErrEmptyPool = errors.New("no character classes selected")
)
