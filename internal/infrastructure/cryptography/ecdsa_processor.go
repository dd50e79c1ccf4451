package cryptography

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/asn1"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/crypto-tester/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/logger"
)

// ecdsaSignature mirrors the ASN.1 structure SEQUENCE { r INTEGER, s INTEGER }
type ecdsaSignature struct {
	R *big.Int
	S *big.Int
}

// ecdsaProcessor struct that implements the ECDSAProcessor interface
type ecdsaProcessor struct {
	random io.Reader
	logger logger.Logger
}

// NewECDSAProcessor creates an ECDSAProcessor backed by crypto/rand
func NewECDSAProcessor(logger logger.Logger) (cryptoalg.ECDSAProcessor, error) {
	return NewECDSAProcessorWithRandom(rand.Reader, logger)
}

// NewECDSAProcessorWithRandom creates an ECDSAProcessor that draws key and nonce randomness from random
func NewECDSAProcessorWithRandom(random io.Reader, logger logger.Logger) (cryptoalg.ECDSAProcessor, error) {
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &ecdsaProcessor{
		random: random,
		logger: logger,
	}, nil
}

// curveForSize maps a curve strength in bits to the matching NIST prime curve
func curveForSize(bits int) (elliptic.Curve, error) {
	switch bits {
	case 224:
		return elliptic.P224(), nil
	case 256:
		return elliptic.P256(), nil
	case 384:
		return elliptic.P384(), nil
	case 521:
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("unsupported curve size %d", bits)
	}
}

// GenerateKeys generates an ECDSA key pair on the NIST curve of the requested size.
func (e *ecdsaProcessor) GenerateKeys(curveSizeBits int) (*cryptoalg.KeyPair, error) {
	curve, err := curveForSize(curveSizeBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyGeneration, err)
	}

	privateKey, err := ecdsa.GenerateKey(curve, e.random)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate elliptic curve keys: %w", cryptoalg.ErrKeyGeneration, err)
	}

	e.logger.Info("Generated EC key pair on ", curve.Params().Name)
	return &cryptoalg.KeyPair{
		PrivateKey: privateKey,
		PublicKey:  &privateKey.PublicKey,
	}, nil
}

// Sign hashes the UTF-8 bytes of message with SHA-256 and signs the digest.
// The signature is ASN.1 DER encoded.
func (e *ecdsaProcessor) Sign(message string, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", cryptoalg.ErrSigning)
	}
	if privateKey.Curve == nil {
		return nil, fmt.Errorf("%w: private key has no curve", cryptoalg.ErrSigning)
	}
	if privateKey.X == nil || privateKey.Y == nil {
		return nil, fmt.Errorf("%w: private key has no public point", cryptoalg.ErrSigning)
	}
	if privateKey.D == nil || privateKey.D.Sign() <= 0 {
		return nil, fmt.Errorf("%w: invalid private key: D must be positive", cryptoalg.ErrSigning)
	}

	hash := sha256.Sum256([]byte(message))
	signature, err := ecdsa.SignASN1(e.random, privateKey, hash[:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign message: %w", cryptoalg.ErrSigning, err)
	}

	e.logger.Info("ECDSA signing succeeded")
	return signature, nil
}

// SignString signs message and returns the signature as standard base64.
func (e *ecdsaProcessor) SignString(message string, privateKey *ecdsa.PrivateKey) (string, error) {
	signature, err := e.Sign(message, privateKey)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify checks an ASN.1 DER signature over the SHA-256 digest of message.
func (e *ecdsaProcessor) Verify(message string, signature []byte, publicKey *ecdsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrVerification)
	}
	if publicKey.Curve == nil || publicKey.X == nil || publicKey.Y == nil {
		return false, fmt.Errorf("%w: public key is incomplete", cryptoalg.ErrVerification)
	}

	var sig ecdsaSignature
	rest, err := asn1.Unmarshal(signature, &sig)
	if err != nil {
		return false, fmt.Errorf("%w: malformed signature: %w", cryptoalg.ErrVerification, err)
	}
	if len(rest) > 0 {
		return false, fmt.Errorf("%w: malformed signature: %d trailing bytes", cryptoalg.ErrVerification, len(rest))
	}
	if sig.R == nil || sig.S == nil {
		return false, fmt.Errorf("%w: malformed signature: missing r or s", cryptoalg.ErrVerification)
	}

	hash := sha256.Sum256([]byte(message))
	valid := ecdsa.VerifyASN1(publicKey, hash[:], signature)

	e.logger.Info("ECDSA verification finished, valid: ", valid)
	return valid, nil
}

// VerifyString decodes a standard base64 signature and verifies it.
func (e *ecdsaProcessor) VerifyString(message, signature string, publicKey *ecdsa.PublicKey) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: signature is not valid base64: %w", cryptoalg.ErrVerification, err)
	}
	return e.Verify(message, raw, publicKey)
}

// EncodeKeyToPEM renders private keys as SEC 1 "EC PRIVATE KEY" and public keys as PKIX "PUBLIC KEY".
func (e *ecdsaProcessor) EncodeKeyToPEM(key any) (string, error) {
	var block *pem.Block

	switch k := key.(type) {
	case *ecdsa.PrivateKey:
		if k == nil {
			return "", fmt.Errorf("%w: private key cannot be nil", cryptoalg.ErrEncoding)
		}
		if k.Curve == nil || k.X == nil || k.Y == nil || k.D == nil {
			return "", fmt.Errorf("%w: private key is incomplete", cryptoalg.ErrEncoding)
		}
		der, err := x509.MarshalECPrivateKey(k)
		if err != nil {
			return "", fmt.Errorf("%w: failed to marshal private key: %w", cryptoalg.ErrEncoding, err)
		}
		block = &pem.Block{Type: cryptoalg.PEMTypeECPrivateKey, Bytes: der}
	case *ecdsa.PublicKey:
		if k == nil {
			return "", fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrEncoding)
		}
		if k.Curve == nil || k.X == nil || k.Y == nil {
			return "", fmt.Errorf("%w: public key is incomplete", cryptoalg.ErrEncoding)
		}
		der, err := x509.MarshalPKIXPublicKey(k)
		if err != nil {
			return "", fmt.Errorf("%w: failed to marshal public key: %w", cryptoalg.ErrEncoding, err)
		}
		block = &pem.Block{Type: cryptoalg.PEMTypePublicKey, Bytes: der}
	default:
		return "", fmt.Errorf("%w: unsupported key type %T", cryptoalg.ErrEncoding, key)
	}

	e.logger.Info("Encoded EC key as ", block.Type)
	return string(pem.EncodeToMemory(block)), nil
}

// DecodeKeyFromPEM parses the first PEM block in text.
// Accepted block types: EC PRIVATE KEY, PRIVATE KEY (PKCS#8) and PUBLIC KEY.
func (e *ecdsaProcessor) DecodeKeyFromPEM(text string) (any, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptoalg.ErrEncoding)
	}

	switch block.Type {
	case cryptoalg.PEMTypeECPrivateKey:
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse EC private key: %w", cryptoalg.ErrEncoding, err)
		}
		return key, nil
	case cryptoalg.PEMTypePKCS8Key:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse PKCS#8 private key: %w", cryptoalg.ErrEncoding, err)
		}
		key, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: PKCS#8 key is %T, not ECDSA", cryptoalg.ErrEncoding, parsed)
		}
		return key, nil
	case cryptoalg.PEMTypePublicKey:
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse public key: %w", cryptoalg.ErrEncoding, err)
		}
		key, ok := parsed.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is %T, not ECDSA", cryptoalg.ErrEncoding, parsed)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: unsupported PEM block type %q", cryptoalg.ErrEncoding, block.Type)
	}
}

// DecodePublicKeyFromPEM parses a PEM encoded ECDSA public key.
func (e *ecdsaProcessor) DecodePublicKeyFromPEM(text string) (*ecdsa.PublicKey, error) {
	key, err := e.DecodeKeyFromPEM(text)
	if err != nil {
		return nil, err
	}
	publicKey, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected a public key, got %T", cryptoalg.ErrEncoding, key)
	}
	return publicKey, nil
}

// DecodePrivateKeyFromPEM parses a PEM encoded ECDSA private key.
func (e *ecdsaProcessor) DecodePrivateKeyFromPEM(text string) (*ecdsa.PrivateKey, error) {
	key, err := e.DecodeKeyFromPEM(text)
	if err != nil {
		return nil, err
	}
	privateKey, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected a private key, got %T", cryptoalg.ErrEncoding, key)
	}
	return privateKey, nil
}
