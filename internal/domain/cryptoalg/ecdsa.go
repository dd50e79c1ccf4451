package cryptoalg

import (
	"crypto/ecdsa"
)

// DefaultCurveSize is the curve strength in bits used when none is requested (P-384).
const DefaultCurveSize = 384

// PEM block types written by EncodeKeyToPEM.
const (
	PEMTypeECPrivateKey = "EC PRIVATE KEY"
	PEMTypePKCS8Key     = "PRIVATE KEY"
	PEMTypePublicKey    = "PUBLIC KEY"
)

// KeyPair holds an ECDSA private key together with its public half.
type KeyPair struct {
	PrivateKey *ecdsa.PrivateKey
	PublicKey  *ecdsa.PublicKey
}

// CurveName returns the name of the curve the pair lives on, e.g. "P-384".
func (k *KeyPair) CurveName() string {
	if k == nil || k.PublicKey == nil || k.PublicKey.Curve == nil {
		return ""
	}
	return k.PublicKey.Curve.Params().Name
}

// ECDSAProcessor handles elliptic curve (ECDSA) signature operations.
// Messages are text; they are signed over the SHA-256 digest of their UTF-8 bytes.
type ECDSAProcessor interface {
	// GenerateKeys generates a key pair on the NIST curve of the given size.
	// Supported sizes: 224, 256, 384, 521.
	GenerateKeys(curveSizeBits int) (*KeyPair, error)

	// Sign creates an ASN.1 DER encoded signature of message.
	Sign(message string, privateKey *ecdsa.PrivateKey) ([]byte, error)

	// SignString is Sign with the signature returned as standard base64.
	SignString(message string, privateKey *ecdsa.PrivateKey) (string, error)

	// Verify reports whether signature is valid for message under publicKey.
	// A wrong signature is (false, nil); only malformed input is an error.
	Verify(message string, signature []byte, publicKey *ecdsa.PublicKey) (bool, error)

	// VerifyString is Verify with the signature given as standard base64.
	VerifyString(message, signature string, publicKey *ecdsa.PublicKey) (bool, error)

	// EncodeKeyToPEM renders a *ecdsa.PrivateKey or *ecdsa.PublicKey as PEM text.
	EncodeKeyToPEM(key any) (string, error)

	// DecodeKeyFromPEM parses the first PEM block of text into a *ecdsa.PrivateKey or *ecdsa.PublicKey.
	DecodeKeyFromPEM(text string) (any, error)

	// DecodePublicKeyFromPEM parses a PEM encoded public key.
	DecodePublicKeyFromPEM(text string) (*ecdsa.PublicKey, error)

	// DecodePrivateKeyFromPEM parses a PEM encoded private key.
	DecodePrivateKeyFromPEM(text string) (*ecdsa.PrivateKey, error)
}

// ChallengeGenerator produces random challenge strings to sign.
type ChallengeGenerator interface {
	// Generate reads length secure random bytes and returns prefix followed by their base64 encoding.
	Generate(length int, prefix string) (string, error)
}
