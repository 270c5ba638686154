package token

type StubVerifier struct {
	VerifyFunc func(token string) Status
}

var _ Verifier = (*StubVerifier)(nil)

func (s *StubVerifier) Verify(token string) Status {
	if s.VerifyFunc == nil {
		panic("Verify() not implemented by stub")
	}
	return s.VerifyFunc(token)
}
