package jsonresult

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"
)

// A candidate shape is matched on its own fields: JSON null only
// satisfies pointer and interface targets, and every required struct
// field must be present. Unknown object keys are ignored. A field is
// optional when it is a pointer or interface type or carries the
// ",omitempty" json tag. Types with their own UnmarshalJSON (and
// []byte, which decodes from a base64 string) follow their own rules.

// decodeShape decodes raw into target (a non-nil pointer) under the
// rules above. The structural checks run before any decoding, so a
// payload that fails them leaves target untouched.
func decodeShape(raw json.RawMessage, target any) error {
	t := reflect.TypeOf(target).Elem()
	if err := checkShape(raw, t); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return errs.Wrap(err)
	}

	return nil
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// checkShape walks raw alongside t, enforcing the null policy and the
// presence of every required field. Type mismatches are left to the
// json decoder, which reports them with better positional detail.
func checkShape(raw json.RawMessage, t reflect.Type) error {
	raw = bytes.TrimSpace(raw)

	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if isNull(raw) {
			return nil
		}
		return checkShape(raw, t.Elem())
	case reflect.Interface:
		return nil
	}

	if isNull(raw) {
		return errs.New("%s does not accept null", t)
	}

	switch t.Kind() {
	case reflect.Struct:
		if len(raw) == 0 || raw[0] != '{' {
			return nil
		}

		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return errs.Wrap(err)
		}

		for _, f := range shapeFields(t) {
			fraw, present := members[f.name]
			if !present {
				if f.required {
					return errs.New("missing required field %q for %s", f.name, t)
				}
				continue
			}
			if err := checkShape(fraw, f.typ); err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		if len(raw) == 0 || raw[0] != '[' {
			return nil
		}

		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return errs.Wrap(err)
		}

		for _, e := range elems {
			if err := checkShape(e, t.Elem()); err != nil {
				return err
			}
		}

	case reflect.Map:
		if len(raw) == 0 || raw[0] != '{' {
			return nil
		}

		var vals map[string]json.RawMessage
		if err := json.Unmarshal(raw, &vals); err != nil {
			return errs.Wrap(err)
		}

		for _, v := range vals {
			if err := checkShape(v, t.Elem()); err != nil {
				return err
			}
		}
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(raw, []byte("null"))
}

// shapeField describes one JSON member of a struct shape.
type shapeField struct {
	name     string
	typ      reflect.Type
	required bool
}

var shapeCache = cache.New(cache.NoExpiration, 0)

// shapeFields returns the JSON members of a struct type, embedded
// structs flattened, computed once per type.
func shapeFields(t reflect.Type) []shapeField {
	key := t.String()
	if fields, ok := shapeCache.Get(key); ok {
		return fields.([]shapeField)
	}

	fields := collectFields(t)
	shapeCache.Set(key, fields, cache.NoExpiration)

	return fields
}

func collectFields(t reflect.Type) []shapeField {
	var fields []shapeField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := parseJSONTag(tag)

		if f.Anonymous && name == "" {
			embedded := f.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				fields = append(fields, collectFields(embedded)...)
				continue
			}
		}

		if name == "" {
			name = f.Name
		}

		optional := strings.Contains(opts, "omitempty") ||
			f.Type.Kind() == reflect.Pointer ||
			f.Type.Kind() == reflect.Interface

		fields = append(fields, shapeField{
			name:     name,
			typ:      f.Type,
			required: !optional,
		})
	}

	return fields
}

func parseJSONTag(tag string) (name, opts string) {
	if idx := strings.Index(tag, ","); idx != -1 {
		return tag[:idx], tag[idx+1:]
	}
	return tag, ""
}
