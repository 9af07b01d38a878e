// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// HandshakeState is the position of the GPGAuth state machine. Transitions
// only ever move forward; any failure lands in StateFailed and stays there.
type HandshakeState int

const (
	StateIdle HandshakeState = iota
	StateServerKeyVerified
	StateChallengeSolved
	StateAuthenticated
	StateFailed
)

// String returns the state name for logs and diagnostics.
func (s HandshakeState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateServerKeyVerified:
		return "ServerKeyVerified"
	case StateChallengeSolved:
		return "ChallengeSolved"
	case StateAuthenticated:
		return "Authenticated"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("HandshakeState(%d)", int(s))
	}
}

type gpgAuthService struct {
	adapter adapter.ServerAdapter
	keys    crypto.KeyStore
	cfg     config.Server
	logger  *logger.Logger

	state  HandshakeState
	reason error
}

// NewAuthService builds the GPGAuth handshake runner. Each instance drives
// one handshake; it starts in StateIdle and is not reusable after a terminal
// state.
func NewAuthService(serverAdapter adapter.ServerAdapter, keys crypto.KeyStore, cfg config.Server, logger *logger.Logger) AuthService {
	return &gpgAuthService{
		adapter: serverAdapter,
		keys:    keys,
		cfg:     cfg,
		logger:  logger,
		state:   StateIdle,
	}
}

// State implements [AuthService].
func (g *gpgAuthService) State() HandshakeState {
	return g.state
}

// Authenticate implements [AuthService]. The three stages run strictly in
// order; each one feeds the next and no transition ever skips a state. The
// server key verification stage is never retried: a pin mismatch is treated
// as a possible man-in-the-middle. The challenge and confirmation stages are
// idempotent to repeat, so transport errors there get a bounded retry.
func (g *gpgAuthService) Authenticate(ctx context.Context) (*SessionContext, error) {
	if g.state != StateIdle {
		return nil, fmt.Errorf("handshake already ran, state %s", g.state)
	}

	if err := g.verifyServer(ctx); err != nil {
		return nil, g.fail(err)
	}
	g.state = StateServerKeyVerified
	g.logger.Info().Str("state", g.state.String()).Msg("server identity verified")

	credential, err := g.login(ctx)
	if err != nil {
		return nil, g.fail(err)
	}

	g.state = StateAuthenticated
	g.adapter.SetSession(credential)

	session := NewSessionContext(credential, g.keys.Fingerprint())
	g.logger.Info().
		Str("state", g.state.String()).
		Time("expires_at", session.ExpiresAt()).
		Msg("session established")

	return session, nil
}

// verifyServer pins the server key and proves the server holds the matching
// private key: it must decrypt a fresh token we encrypt to its public key
// and echo the plaintext back.
func (g *gpgAuthService) verifyServer(ctx context.Context) error {
	serverKey, err := g.adapter.FetchServerKey(ctx)
	if err != nil {
		return fmt.Errorf("fetch server key: %w", err)
	}

	if !g.keys.VerifyFingerprint(serverKey.Fingerprint, g.cfg.Fingerprint) {
		return fmt.Errorf("%w: server advertises %s, pinned %s",
			ErrTrustMismatch, serverKey.Fingerprint, g.cfg.Fingerprint)
	}

	if err = g.keys.ImportServerKey(serverKey.ArmoredKey); err != nil {
		return fmt.Errorf("import server key: %w", err)
	}

	// The advertised fingerprint string and the actual key material must
	// agree; a server could otherwise pin-pass with someone else's key.
	if !g.keys.VerifyFingerprint(g.keys.ServerFingerprint(), g.cfg.Fingerprint) {
		return fmt.Errorf("%w: key material fingerprint %s does not match pinned %s",
			ErrTrustMismatch, g.keys.ServerFingerprint(), g.cfg.Fingerprint)
	}

	token := models.NewGPGAuthToken()
	encryptedToken, err := g.keys.EncryptForServer(token)
	if err != nil {
		return fmt.Errorf("encrypt verify token: %w", err)
	}

	echo, err := g.adapter.VerifyServerIdentity(ctx, g.keys.Fingerprint(), encryptedToken)
	if err != nil {
		return fmt.Errorf("verify server identity: %w", err)
	}
	if echo != token {
		return fmt.Errorf("%w: server failed to decrypt the verify token", ErrTrustMismatch)
	}

	return nil
}

// login runs the challenge and confirmation stages. A failed decrypt or an
// explicit server rejection is ErrChallengeRejected and is never retried
// here; transport errors are retried up to cfg.LoginRetries before the
// whole exchange surfaces as ErrLoginFailed.
func (g *gpgAuthService) login(ctx context.Context) (models.SessionCredential, error) {
	var lastErr error

	for attempt := 0; attempt <= g.cfg.LoginRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn().Int("attempt", attempt).Err(lastErr).Msg("retrying login exchange")
		}

		credential, err := g.loginOnce(ctx)
		if err == nil {
			return credential, nil
		}
		if errors.Is(err, ErrChallengeRejected) || errors.Is(err, ErrTrustMismatch) || ctx.Err() != nil {
			return models.SessionCredential{}, err
		}

		lastErr = err
	}

	return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrLoginFailed, lastErr)
}

func (g *gpgAuthService) loginOnce(ctx context.Context) (models.SessionCredential, error) {
	challenge, err := g.adapter.RequestChallenge(ctx, g.keys.Fingerprint())
	if err != nil {
		if errors.Is(err, adapter.ErrGPGAuthRejected) {
			return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrChallengeRejected, err)
		}
		return models.SessionCredential{}, fmt.Errorf("request challenge: %w", err)
	}

	token, err := g.keys.Decrypt(models.SecretCiphertext(challenge))
	if err != nil {
		return models.SessionCredential{}, fmt.Errorf("%w: cannot decrypt challenge: %v", ErrChallengeRejected, err)
	}

	if err = models.ValidateGPGAuthToken(token); err != nil {
		return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrChallengeRejected, err)
	}
	g.state = StateChallengeSolved

	credential, err := g.adapter.CompleteChallenge(ctx, g.keys.Fingerprint(), token)
	if err != nil {
		if errors.Is(err, adapter.ErrGPGAuthRejected) {
			return models.SessionCredential{}, fmt.Errorf("%w: %v", ErrChallengeRejected, err)
		}
		return models.SessionCredential{}, fmt.Errorf("complete challenge: %w", err)
	}

	return credential, nil
}

func (g *gpgAuthService) fail(err error) error {
	g.state = StateFailed
	g.reason = err
	g.logger.Error().Err(err).Msg("handshake failed")
	return err
}
