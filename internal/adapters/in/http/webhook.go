package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"pharmacy/internal/core/application/chatbot"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// WhatsApp Cloud API delivery. Only the fields the bot reads are decoded.
type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string `json:"field"`
	Value struct {
		Messages []webhookMessage `json:"messages"`
	} `json:"value"`
}

type webhookMessage struct {
	From string `json:"from"`
	ID   string `json:"id"`
	Type string `json:"type"`
	Text *struct {
		Body string `json:"body"`
	} `json:"text"`
	Interactive *struct {
		Type        string `json:"type"`
		ButtonReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"button_reply"`
		ListReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"list_reply"`
	} `json:"interactive"`
	// Button is a quick reply on a template message.
	Button *struct {
		Payload string `json:"payload"`
		Text    string `json:"text"`
	} `json:"button"`
}

// incoming converts a message the bot understands. Media, reactions and
// other types are skipped.
func (m webhookMessage) incoming() (chatbot.Incoming, bool, error) {
	var in chatbot.Incoming
	switch {
	case m.Type == "text" && m.Text != nil:
		in.Text = m.Text.Body
	case m.Type == "interactive" && m.Interactive != nil && m.Interactive.ButtonReply != nil:
		in.ReplyID = m.Interactive.ButtonReply.ID
		in.Text = m.Interactive.ButtonReply.Title
	case m.Type == "interactive" && m.Interactive != nil && m.Interactive.ListReply != nil:
		in.ReplyID = m.Interactive.ListReply.ID
		in.Text = m.Interactive.ListReply.Title
	case m.Type == "button" && m.Button != nil:
		in.ReplyID = m.Button.Payload
		in.Text = m.Button.Text
	default:
		return in, false, nil
	}

	from, err := kernel.NewPhone(m.From)
	if err != nil {
		return in, false, err
	}
	in.From = from
	return in, true, nil
}

// VerifyWebhook handles GET /webhook, the subscription handshake: the
// challenge is echoed back when the verify token matches.
func (s *Server) VerifyWebhook(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	expected := s.cfg.WebhookVerifyToken
	if mode != "subscribe" || expected == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return fmt.Errorf("%w: webhook verification failed", errs.ErrForbidden)
	}
	return c.String(http.StatusOK, challenge)
}

// ReceiveWebhook handles POST /webhook. Every message is handed to the bot;
// bot failures are logged and the delivery is still acknowledged so the
// provider does not redeliver it.
func (s *Server) ReceiveWebhook(c echo.Context) error {
	var payload webhookPayload
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("webhook payload", err)
	}

	ctx := c.Request().Context()
	logger := s.requestLogger(c)
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				in, ok, err := message.incoming()
				if err != nil {
					logger.Warn().Err(err).Str("message_id", message.ID).Msg("skip message with invalid sender")
					continue
				}
				if !ok {
					logger.Debug().Str("message_id", message.ID).Str("type", message.Type).Msg("skip unsupported message")
					continue
				}
				if err := s.deps.Bot.Handle(ctx, in); err != nil {
					logger.Error().Err(err).Str("message_id", message.ID).Msg("bot failed to handle message")
				}
			}
		}
	}
	return c.NoContent(http.StatusOK)
}
