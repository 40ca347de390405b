package identities

import (
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Cipher is implemented by cryptox.FieldCipher.
type Cipher interface {
	EncryptField(plaintext string) (string, error)
	DecryptField(ciphertext string) (string, error)
}

var fieldAccessors = map[string]func(*models.Identity) *string{
	"first_name":    func(i *models.Identity) *string { return &i.FirstName },
	"last_name":     func(i *models.Identity) *string { return &i.LastName },
	"phone":         func(i *models.Identity) *string { return &i.Phone },
	"street":        func(i *models.Identity) *string { return &i.Street },
	"location":      func(i *models.Identity) *string { return &i.Location },
	"postal_code":   func(i *models.Identity) *string { return &i.PostalCode },
	"date_of_birth": func(i *models.Identity) *string { return &i.DateOfBirth },
	"avatar_key":    func(i *models.Identity) *string { return &i.AvatarKey },
}

// FieldCodec encrypts a configured set of identity attributes.
type FieldCodec struct {
	cipher Cipher
	fields []string
}

// NewFieldCodec fails on a field name it does not know.
func NewFieldCodec(c Cipher, fields []string) (*FieldCodec, error) {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := fieldAccessors[f]; !ok {
			return nil, fmt.Errorf("unknown encrypted field %q", f)
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return &FieldCodec{cipher: c, fields: out}, nil
}

func (c *FieldCodec) Fields() []string {
	return c.fields
}

// Encode returns a copy of i with the configured fields encrypted. Empty
// values stay empty.
func (c *FieldCodec) Encode(i *models.Identity) (*models.Identity, error) {
	enc := *i
	for _, name := range c.fields {
		p := fieldAccessors[name](&enc)
		if *p == "" {
			continue
		}
		v, err := c.cipher.EncryptField(*p)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s: %w", name, err)
		}
		*p = v
	}
	return &enc, nil
}

// Decode decrypts the configured fields of i in place.
func (c *FieldCodec) Decode(i *models.Identity) error {
	for _, name := range c.fields {
		p := fieldAccessors[name](i)
		if *p == "" {
			continue
		}
		v, err := c.cipher.DecryptField(*p)
		if err != nil {
			return fmt.Errorf("decrypt %s: %w", name, err)
		}
		*p = v
	}
	return nil
}
