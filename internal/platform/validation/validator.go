package validation

// Validator checks struct values against their `validate` tags. It returns
// a map of field name to message, or nil when the value is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
