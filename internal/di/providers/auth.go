package providers

import (
	"github.com/samber/do/v2"

	"github.com/studyhallapp/studyhall-server/internal/auth"
	"github.com/studyhallapp/studyhall-server/internal/config"
	"github.com/studyhallapp/studyhall-server/internal/logger"
)

// AuthKey wraps the session token key bytes.
type AuthKey []byte

// ProvideAuthKey resolves the session token key. A key configured via
// TOKEN_KEY wins; otherwise a key is loaded from, or generated into,
// the data directory.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Auth.TokenKeyHex != "" {
		key, err := auth.DecodeKey(cfg.Auth.TokenKeyHex)
		if err != nil {
			return nil, err
		}
		log.Info("Session token key loaded from configuration")
		return AuthKey(key), nil
	}

	key, err := auth.LoadOrGenerateKey(cfg.Data.BasePath)
	if err != nil {
		return nil, err
	}

	log.Info("Session token key loaded",
		"session_duration", cfg.Auth.SessionDuration,
	)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	authKey := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService([]byte(authKey), cfg.Auth.SessionDuration)
}
