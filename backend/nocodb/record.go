package nocodb

// Record is a single row from a NocoDB table. The schema exposes both
// opaque generated field ids and human-readable aliases, so reads of
// semantically important fields go through Field with an ordered list of
// candidate keys instead of indexing the map directly.
type Record map[string]interface{}

// Field returns the value of the first candidate key present in the
// record. The second result distinguishes "no candidate key exists"
// from "key exists but holds an empty or nil value".
func (r Record) Field(keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// StringField resolves a field through Field and coerces it to a string.
// Non-string values (and absent fields) yield "".
func (r Record) StringField(keys ...string) (string, bool) {
	v, ok := r.Field(keys...)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// BoolField resolves a field and applies the tolerant boolean rule used
// across the member tables: boolean true and the literal string "yes"
// are true, everything else is false. The comparison is case-sensitive
// on purpose; "Yes" was never written by any client.
func (r Record) BoolField(keys ...string) bool {
	v, ok := r.Field(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "yes"
	default:
		return false
	}
}

// ID returns the record's primary key as a string. NocoDB returns
// numeric ids as JSON numbers, so both forms are accepted.
func (r Record) ID() string {
	v, ok := r.Field("Id", "id", "ID")
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return formatID(t)
	default:
		return ""
	}
}
