package service

// VerificationTokenGenerator produces opaque single-use tokens that prove
// control of an email address.
type VerificationTokenGenerator interface {
	// Generate returns a fresh unpredictable token on every call.
	Generate() string
}
