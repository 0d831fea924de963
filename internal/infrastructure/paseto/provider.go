package pasetoinfra

import (
	"fmt"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/go-finance-api/internal/config"
	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
)

// Provider signs and verifies PASETO v4.public tokens over an Ed25519 key
// pair. Tokens are stateless: validity is signature plus embedded expiration,
// never a lookup, so a token cannot be revoked before it expires. The
// configured lifetime is the whole risk window.
type Provider struct {
	secretKey paseto.V4AsymmetricSecretKey
	publicKey paseto.V4AsymmetricPublicKey
	expiry    time.Duration
	parser    paseto.Parser
}

// NewProvider builds a Provider from the hex-encoded key material and token
// lifetime held in cfg.
func NewProvider(cfg *config.Config) (*Provider, error) {
	secretKey, err := paseto.NewV4AsymmetricSecretKeyFromHex(cfg.PasetoPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parse paseto private key: %w", err)
	}
	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromHex(cfg.PasetoPublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse paseto public key: %w", err)
	}
	return &Provider{
		secretKey: secretKey,
		publicKey: publicKey,
		expiry:    cfg.PasetoExpiration,
		// The default parser enforces expiry on every parse.
		parser: paseto.NewParser(),
	}, nil
}

// Generate signs a token carrying the subject identity and an absolute
// expiration of now plus the configured lifetime. CPU-only.
func (p *Provider) Generate(claims domain.Claims) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetSubject(claims.Sub.String())
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.expiry))
	return token.V4Sign(p.secretKey, nil), nil
}

// Validate parses and verifies a token and extracts its subject. Malformed
// structure, bad signature, expiry and an unparsable subject all collapse to
// the same invalid-token error so callers can't probe for the failure cause.
func (p *Provider) Validate(tokenStr string) (domain.Claims, error) {
	parsed, err := p.parser.ParseV4Public(p.publicKey, tokenStr, nil)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("parse token: %w", domain.ErrInvalidToken)
	}
	sub, err := parsed.GetSubject()
	if err != nil {
		return domain.Claims{}, fmt.Errorf("token subject: %w", domain.ErrInvalidToken)
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("token subject: %w", domain.ErrInvalidToken)
	}
	return domain.Claims{Sub: id}, nil
}
