// Package cryptox contains the cryptographic primitives of the service: the
// deterministic field cipher used for sensitive identity attributes and the
// bcrypt password hasher.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/hkdf"
)

const (
	fieldKeySize = 32
	tagSize      = 16
	macInfo      = "gophauth field mac v1"
)

// ErrCipherText is the reason behind every DecryptField failure. It is
// wrapped in a common.Error of kind CIPHER_ERROR.
var ErrCipherText = errors.New("value was not produced by this field cipher")

// FieldCipher encrypts single string attributes with AES-256-CBC under a
// fixed IV and appends a truncated HMAC-SHA256 tag of the ciphertext.
//
// The output is deterministic: equal plaintexts always encrypt to equal
// ciphertexts, so encrypted columns can still be compared for equality.
// The same property leaks equality of values to anyone holding the table.
type FieldCipher struct {
	block  cipher.Block
	iv     []byte
	macKey []byte
}

// NewFieldCipher builds a cipher from a hex encoded 32-byte key and 16-byte IV.
func NewFieldCipher(keyHex, ivHex string) (*FieldCipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("field key: %w", err)
	}
	if len(key) != fieldKeySize {
		return nil, fmt.Errorf("field key: want %d bytes, got %d", fieldKeySize, len(key))
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("field iv: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("field iv: want %d bytes, got %d", aes.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	macKey := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(macInfo)), macKey); err != nil {
		return nil, fmt.Errorf("derive mac key: %w", err)
	}

	return &FieldCipher{block: block, iv: iv, macKey: macKey}, nil
}

// EncryptField returns hex(ciphertext || tag).
func (c *FieldCipher) EncryptField(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ct, padded)

	return hex.EncodeToString(append(ct, c.tag(ct)...)), nil
}

// DecryptField reverses EncryptField. Input that is not valid hex, has the
// wrong length, fails the tag check, has broken padding or does not decode
// to UTF-8 is rejected with a CIPHER_ERROR.
func (c *FieldCipher) DecryptField(ciphertext string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", cipherError()
	}
	if len(raw) < aes.BlockSize+tagSize || (len(raw)-tagSize)%aes.BlockSize != 0 {
		return "", cipherError()
	}

	ct, tag := raw[:len(raw)-tagSize], raw[len(raw)-tagSize:]
	if !hmac.Equal(tag, c.tag(ct)) {
		return "", cipherError()
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(pt, ct)

	pt, ok := pkcs7Unpad(pt, aes.BlockSize)
	if !ok || !utf8.Valid(pt) {
		return "", cipherError()
	}

	return string(pt), nil
}

func (c *FieldCipher) tag(ct []byte) []byte {
	m := hmac.New(sha256.New, c.macKey)
	m.Write(ct)
	return m.Sum(nil)[:tagSize]
}

func cipherError() error {
	return common.Wrap(common.KindCipher, "field cipher error", ErrCipherText)
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, bool) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, false
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}
