package validation

// StubValidator returns canned results and records the last value it checked.
type StubValidator struct {
	ValidateStructFunc func(any) map[string]string
	Given              any
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) ValidateStruct(st any) map[string]string {
	s.Given = st
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}
