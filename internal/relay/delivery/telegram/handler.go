package telegram

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"time-vault-relay/internal/metrics"
	"time-vault-relay/internal/relay"
	pkgLog "time-vault-relay/pkg/log"
	pkgResponse "time-vault-relay/pkg/response"
	pkgTelegram "time-vault-relay/pkg/telegram"
)

type handler struct {
	l        pkgLog.Logger
	uc       relay.UseCase
	security *securityValidator
}

// HandleWebhook processes one Telegram update end to end.
// Rejected senders and unsupported media are acknowledged with 200 so that
// Telegram does not redeliver them.
//
// @Summary      Telegram webhook
// @Description  Receives a Telegram update, authorizes the sender and forwards supported media to the vault channel.
// @Tags         telegram
// @Accept       json
// @Produce      json
// @Param        X-Telegram-Bot-Api-Secret-Token  header  string  true  "Webhook secret token"
// @Param        update  body      object  true  "Telegram Update"
// @Success      200     {object}  response.Resp
// @Failure      400     {object}  response.Resp
// @Failure      401     {object}  response.Resp
// @Failure      403     {object}  response.Resp
// @Failure      500     {object}  response.Resp
// @Router       /api/telegram/webhook [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "telegram handler: panic while processing update: %v", r)
			metrics.RecordWebhook(string(relay.OutcomeInternalError))
			pkgResponse.InternalError(c)
		}
	}()

	if err := h.uc.ValidateConfig(ctx); err != nil {
		h.l.Errorf(ctx, "telegram handler: refusing update: %v", err)
		h.fail(c, err)
		return
	}

	if err := h.security.ValidateSecret(c.GetHeader(SecretHeader)); err != nil {
		h.l.Warnf(ctx, "telegram handler: invalid or missing secret token: ip=%s", c.ClientIP())
		h.fail(c, err)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "telegram handler: request from disallowed source: ip=%s", extractIP(c.Request))
		h.fail(c, err)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		metrics.RecordWebhook(string(relay.OutcomeBadRequest))
		pkgResponse.BadRequest(c, messageInvalidStructure)
		return
	}

	data, err := relay.ValidateMessage(update)
	if err != nil {
		if errors.Is(err, relay.ErrNonMessageUpdate) {
			h.l.Debugf(ctx, "telegram handler: ignoring non-message update: update_id=%d", update.UpdateID)
			h.succeed(c, relay.OutcomeIgnored)
			return
		}
		h.l.Errorf(ctx, "telegram handler: invalid message: update_id=%d: %v", update.UpdateID, err)
		h.fail(c, err)
		return
	}

	out, err := h.uc.Process(ctx, data)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: processing failed: update_id=%d sender_id=%d message_type=%s: %v",
			update.UpdateID, data.SenderID, out.MessageType, err)
		h.fail(c, err)
		return
	}

	h.succeed(c, out.Outcome)
}

func (h *handler) succeed(c *gin.Context, outcome relay.Outcome) {
	metrics.RecordWebhook(string(outcome))
	pkgResponse.OK(c)
}

func (h *handler) fail(c *gin.Context, err error) {
	status, outcome := mapError(err)
	metrics.RecordWebhook(string(outcome))

	switch {
	case status == http.StatusUnauthorized:
		pkgResponse.Unauthorized(c)
	case status == http.StatusForbidden:
		pkgResponse.Forbidden(c)
	case status == http.StatusBadRequest:
		pkgResponse.BadRequest(c, messageInvalidStructure)
	case outcome == relay.OutcomeForwardFailed:
		pkgResponse.Error(c, status, messageForwardFailed)
	default:
		pkgResponse.InternalError(c)
	}
}
