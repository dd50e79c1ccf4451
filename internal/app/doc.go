// Package app sequences a signature test run: key generation, challenge generation,
// signing, PEM conversion and an optional self-check, stopping at the first failure.
package app
