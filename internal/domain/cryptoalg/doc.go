// Package cryptoalg defines the contracts for ECDSA key material: key-pair generation, signing,
// verification, PEM encoding and the secure random challenges a signature test run signs.
package cryptoalg
