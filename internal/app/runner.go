package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/MGTheTrain/crypto-tester/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/logger"

	"github.com/google/uuid"
)

// Step names, in the order they run
const (
	StepPrepare           = "Preparing"
	StepGenerateKeys      = "Generating ECDSA keys"
	StepGenerateChallenge = "Generating crypto-secure random data"
	StepSign              = "Signing data using ECDSA Private Key"
	StepEncodePublicKey   = "Converting ECDSA Public Key to PEM format"
	StepEncodePrivateKey  = "Converting ECDSA Private Key to PEM format"
	StepVerify            = "Verifying signature using decoded ECDSA Public Key"
)

// ErrSelfCheckFailed is returned when the decoded public key rejects the signature just produced.
var ErrSelfCheckFailed = errors.New("signature self-check failed")

// StepError reports which step of a run failed and the stack at the point of failure.
type StepError struct {
	Step  string
	Err   error
	Stack []byte
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// stackError carries the stack captured where a step detected its failure.
type stackError struct {
	err   error
	stack []byte
}

func (e *stackError) Error() string { return e.err.Error() }
func (e *stackError) Unwrap() error { return e.err }

// failed records the caller's stack with err; steps return failures through it.
func failed(err error) error {
	return &stackError{err: err, stack: debug.Stack()}
}

// RunSummary holds the artifacts of a successful run
type RunSummary struct {
	RunID         string
	Curve         string
	Challenge     string
	Signature     string
	PublicKeyPEM  string
	PrivateKeyPEM string
	Verified      bool
}

// runState is threaded through the steps; a step only reads what earlier steps set.
type runState struct {
	keys    *cryptoalg.KeyPair
	summary RunSummary
}

type step struct {
	name string
	run  func(ctx context.Context, state *runState) error
}

// SignatureTestRunner executes one signature test run
type SignatureTestRunner struct {
	processor  cryptoalg.ECDSAProcessor
	challenges cryptoalg.ChallengeGenerator
	settings   config.TesterSettings
	reporter   Reporter
	logger     logger.Logger
}

// NewSignatureTestRunner creates a new SignatureTestRunner instance
func NewSignatureTestRunner(
	processor cryptoalg.ECDSAProcessor,
	challenges cryptoalg.ChallengeGenerator,
	settings config.TesterSettings,
	reporter Reporter,
	logger logger.Logger,
) (*SignatureTestRunner, error) {
	if processor == nil {
		return nil, fmt.Errorf("ECDSA processor cannot be nil")
	}
	if challenges == nil {
		return nil, fmt.Errorf("challenge generator cannot be nil")
	}
	if reporter == nil {
		return nil, fmt.Errorf("reporter cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &SignatureTestRunner{
		processor:  processor,
		challenges: challenges,
		settings:   settings,
		reporter:   reporter,
		logger:     logger,
	}, nil
}

// Run executes the steps in order and prints the summary.
// The first failing step ends the run with a *StepError; later steps never see unset data.
func (r *SignatureTestRunner) Run(ctx context.Context) (*RunSummary, error) {
	state := &runState{summary: RunSummary{RunID: uuid.NewString()}}
	log := r.logger.With("run_id", state.summary.RunID)
	log.Info("Starting signature test run with curve size ", r.settings.CurveSize)

	r.reporter.StartTimer()
	for _, s := range r.steps() {
		r.reporter.Task(s.name)

		err := ctx.Err()
		if err == nil {
			err = s.run(ctx, state)
		}
		if err != nil {
			stepErr := &StepError{Step: s.name, Err: err}
			var se *stackError
			if errors.As(err, &se) {
				stepErr.Err, stepErr.Stack = se.err, se.stack
			} else {
				stepErr.Stack = debug.Stack()
			}
			r.reporter.StopTimer()
			r.reporter.Fail(stepErr.Err, string(stepErr.Stack))
			log.Error("Signature test run failed: ", stepErr)
			return nil, stepErr
		}

		r.reporter.OK()
		log.Debug("Step finished: ", s.name)
	}
	r.reporter.StopTimer()

	r.printSummary(&state.summary)
	log.Info("Signature test run completed on ", state.summary.Curve)
	return &state.summary, nil
}

func (r *SignatureTestRunner) steps() []step {
	steps := []step{
		{StepPrepare, r.prepare},
		{StepGenerateKeys, r.generateKeys},
		{StepGenerateChallenge, r.generateChallenge},
		{StepSign, r.sign},
		{StepEncodePublicKey, r.encodePublicKey},
		{StepEncodePrivateKey, r.encodePrivateKey},
	}
	if r.settings.VerifySignature {
		steps = append(steps, step{StepVerify, r.verify})
	}
	return steps
}

func (r *SignatureTestRunner) prepare(_ context.Context, _ *runState) error {
	if err := r.settings.Validate(); err != nil {
		return failed(fmt.Errorf("invalid tester settings: %w", err))
	}
	return nil
}

func (r *SignatureTestRunner) generateKeys(_ context.Context, state *runState) error {
	keys, err := r.processor.GenerateKeys(r.settings.CurveSize)
	if err != nil {
		return failed(err)
	}
	if keys == nil || keys.PrivateKey == nil || keys.PublicKey == nil {
		return failed(fmt.Errorf("%w: processor returned no key pair", cryptoalg.ErrKeyGeneration))
	}
	state.keys = keys
	state.summary.Curve = keys.CurveName()
	return nil
}

func (r *SignatureTestRunner) generateChallenge(_ context.Context, state *runState) error {
	challenge, err := r.challenges.Generate(r.settings.ChallengeLength, r.settings.ChallengePrefix)
	if err != nil {
		return failed(err)
	}
	state.summary.Challenge = challenge
	return nil
}

func (r *SignatureTestRunner) sign(_ context.Context, state *runState) error {
	signature, err := r.processor.SignString(state.summary.Challenge, state.keys.PrivateKey)
	if err != nil {
		return failed(err)
	}
	state.summary.Signature = signature
	return nil
}

func (r *SignatureTestRunner) encodePublicKey(_ context.Context, state *runState) error {
	text, err := r.processor.EncodeKeyToPEM(state.keys.PublicKey)
	if err != nil {
		return failed(err)
	}
	state.summary.PublicKeyPEM = text
	return nil
}

func (r *SignatureTestRunner) encodePrivateKey(_ context.Context, state *runState) error {
	text, err := r.processor.EncodeKeyToPEM(state.keys.PrivateKey)
	if err != nil {
		return failed(err)
	}
	state.summary.PrivateKeyPEM = text
	return nil
}

func (r *SignatureTestRunner) verify(_ context.Context, state *runState) error {
	publicKey, err := r.processor.DecodePublicKeyFromPEM(state.summary.PublicKeyPEM)
	if err != nil {
		return failed(err)
	}

	valid, err := r.processor.VerifyString(state.summary.Challenge, state.summary.Signature, publicKey)
	if err != nil {
		return failed(err)
	}
	if !valid {
		return failed(ErrSelfCheckFailed)
	}
	state.summary.Verified = true
	return nil
}

func (r *SignatureTestRunner) printSummary(summary *RunSummary) {
	r.reporter.Completed()
	r.reporter.KeyValue("Challenge", summary.Challenge)
	r.reporter.KeyValue("Signature", summary.Signature)
	r.reporter.KeyValue("Public Key", "\n"+summary.PublicKeyPEM)
	r.reporter.KeyValue("Private Key", "\n"+summary.PrivateKeyPEM)
}
