package minisite

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// NormalizePatch turns a raw JSON body into a bson.M containing exactly the
// supplied keys, coerced to their typed values. Presence is meaningful: a key
// present with an empty or null value clears the stored field, a key that is
// absent leaves it untouched. Unknown keys are rejected rather than ignored
// so a client typo cannot silently drop an edit.
func NormalizePatch(raw map[string]any) (bson.M, error) {
	if len(raw) == 0 {
		return nil, validationErrorf("no fields supplied")
	}

	patch := bson.M{}
	// Deterministic iteration so validation errors are stable.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec, known := configFields[key]
		if !known {
			return nil, validationErrorf("unknown field %q", key)
		}
		value := raw[key]

		switch spec.kind {
		case kindString:
			s, err := coerceString(key, value)
			if err != nil {
				return nil, err
			}
			patch[key] = s
		case kindBool:
			b, err := coerceBool(key, value)
			if err != nil {
				return nil, err
			}
			patch[key] = b
		case kindTime:
			t, err := coerceTime(key, value)
			if err != nil {
				return nil, err
			}
			patch[key] = t
		case kindComplex:
			// Null decodes to the zero payload, clearing the section.
			decoded, err := spec.decode(value)
			if err != nil {
				return nil, validationErrorf("field %q has an invalid shape", key)
			}
			patch[key] = decoded
		}
	}
	return patch, nil
}

// restrictToEditor verifies that every patched key belongs to the editor's
// owned field set.
func restrictToEditor(editor string, patch bson.M) error {
	owned, ok := editorFields[editor]
	if !ok {
		return validationErrorf("unknown editor %q", editor)
	}
	for key := range patch {
		if !owned[key] {
			return validationErrorf("field %q is not editable from the %s editor", key, editor)
		}
	}
	return nil
}
