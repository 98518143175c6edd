package usecase

import (
	"context"
	"fmt"
	"strings"

	"time-vault-relay/internal/relay"
)

// ValidateConfig is the gate run before any request is processed.
func (uc *implUseCase) ValidateConfig(ctx context.Context) error {
	missing := uc.cfg.Missing()
	if uc.bot == nil {
		missing = append(missing, "bot")
	}
	if len(missing) == 0 {
		return nil
	}

	p := uc.cfg.Presence()
	uc.l.Errorf(ctx, "relay usecase: missing required configuration: hasSecret=%t hasAdmin=%t hasChannel=%t hasToken=%t hasBot=%t",
		p.HasSecret, p.HasAdmin, p.HasChannel, p.HasToken, uc.bot != nil)
	return fmt.Errorf("%w: %s", relay.ErrConfigInvalid, strings.Join(missing, ", "))
}

// IsAuthorized reports whether senderID is on the allow-list.
func (uc *implUseCase) IsAuthorized(senderID int64) bool {
	return uc.allowList.Contains(senderID)
}
