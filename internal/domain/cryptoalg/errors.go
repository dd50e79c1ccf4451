package cryptoalg

import "errors"

// Sentinel errors for the signature operations. Concrete failures wrap one of
// these so callers can classify them with errors.Is.
var (
	// ErrKeyGeneration indicates a key pair could not be generated.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrSigning indicates the private key was missing or malformed, or signing itself failed.
	ErrSigning = errors.New("signing failed")

	// ErrVerification indicates a structurally malformed signature or public key.
	// A signature that simply does not match is not an error.
	ErrVerification = errors.New("verification failed")

	// ErrEncoding indicates a key could not be converted to or from PEM text.
	ErrEncoding = errors.New("key encoding failed")

	// ErrRandomSource indicates the secure random source could not deliver bytes.
	ErrRandomSource = errors.New("secure random source unavailable")
)
