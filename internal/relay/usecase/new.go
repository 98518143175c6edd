package usecase

import (
	"time-vault-relay/config"
	"time-vault-relay/internal/relay"
	"time-vault-relay/pkg/i18n"
	pkgLog "time-vault-relay/pkg/log"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

type implUseCase struct {
	l          pkgLog.Logger
	bot        pkgTelegram.ITelegram
	translator *i18n.Translator
	cfg        config.TelegramConfig
	allowList  relay.AllowList
}

var _ relay.UseCase = (*implUseCase)(nil)

// New creates a new relay UseCase instance. bot may be nil when no token is
// configured; ValidateConfig then fails every request.
func New(
	l pkgLog.Logger,
	bot pkgTelegram.ITelegram,
	translator *i18n.Translator,
	cfg config.TelegramConfig,
) *implUseCase {
	return &implUseCase{
		l:          l,
		bot:        bot,
		translator: translator,
		cfg:        cfg,
		allowList:  relay.NewAllowList(cfg.AllowedIDs),
	}
}
