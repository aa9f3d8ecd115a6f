package crypto

import (
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strings"
)

// CredentialHash returns the blob name of a user: the hex SHA-512 of the
// upper-cased user name, the passphrase and the installation-unique text.
// The server only ever sees this value.
func CredentialHash(username, passphrase, uniqueText string) string {
	sum := sha512.Sum512([]byte(strings.ToUpper(username) + passphrase + uniqueText))
	return hex.EncodeToString(sum[:])
}

// EncryptionKey returns the secret blobs are encrypted with. Binding it to
// the installation text keeps blobs from different deployments apart.
func EncryptionKey(passphrase, uniqueText string) string {
	return passphrase + uniqueText
}

// UniqueTextFromURL derives the default installation-unique text from the
// endpoint address: its upper-cased host. An unparsable address yields the
// upper-cased input.
func UniqueTextFromURL(address string) string {
	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return strings.ToUpper(address)
	}
	return strings.ToUpper(u.Host)
}
