package fieldcrypt

import (
	"fmt"
	"reflect"
)

// TagName marks struct fields the converter transforms: `encrypted:"true"`.
const TagName = "encrypted"

var stringPtrType = reflect.TypeOf((*string)(nil))

// ColumnConverter sits between the repositories and the database and turns
// plaintext attribute values into stored column values and back.
// A converter without a cipher passes values through unchanged.
type ColumnConverter struct {
	cipher Cipher
}

// NewColumnConverter returns a converter backed by c. c may be nil.
func NewColumnConverter(c Cipher) *ColumnConverter {
	return &ColumnConverter{cipher: c}
}

// Enabled reports whether values are actually encrypted.
func (cc *ColumnConverter) Enabled() bool {
	return cc != nil && cc.cipher != nil
}

// ToColumn converts an attribute value into its stored form.
func (cc *ColumnConverter) ToColumn(attr *string) (*string, error) {
	if !cc.Enabled() {
		return attr, nil
	}
	return cc.cipher.Encrypt(attr)
}

// FromColumn converts a stored value back into the attribute value.
func (cc *ColumnConverter) FromColumn(col *string) (*string, error) {
	if !cc.Enabled() {
		return col, nil
	}
	return cc.cipher.Decrypt(col)
}

// ToColumnString is ToColumn for non-optional values.
func (cc *ColumnConverter) ToColumnString(attr string) (string, error) {
	out, err := cc.ToColumn(&attr)
	if err != nil {
		return "", err
	}
	return *out, nil
}

// EncryptFields replaces every tagged string or *string field of the struct
// pointed to by model with its stored form.
func (cc *ColumnConverter) EncryptFields(model any) error {
	return cc.walk(model, cc.ToColumn)
}

// DecryptFields is the inverse of EncryptFields.
func (cc *ColumnConverter) DecryptFields(model any) error {
	return cc.walk(model, cc.FromColumn)
}

func (cc *ColumnConverter) walk(model any, convert func(*string) (*string, error)) error {
	v := reflect.ValueOf(model)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("fieldcrypt: expected non-nil struct pointer, got %T", model)
	}
	if !cc.Enabled() {
		return nil
	}
	return walkStruct(v.Elem(), convert)
}

func walkStruct(v reflect.Value, convert func(*string) (*string, error)) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if err := walkStruct(fv, convert); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if sf.Tag.Get(TagName) != "true" {
			continue
		}

		switch {
		case fv.Kind() == reflect.String:
			s := fv.String()
			out, err := convert(&s)
			if err != nil {
				return fmt.Errorf("field %s: %w", sf.Name, err)
			}
			fv.SetString(*out)
		case fv.Type() == stringPtrType:
			if fv.IsNil() {
				continue
			}
			out, err := convert(fv.Interface().(*string))
			if err != nil {
				return fmt.Errorf("field %s: %w", sf.Name, err)
			}
			fv.Set(reflect.ValueOf(out))
		default:
			return fmt.Errorf("fieldcrypt: field %s tagged %s must be string or *string", sf.Name, TagName)
		}
	}
	return nil
}
