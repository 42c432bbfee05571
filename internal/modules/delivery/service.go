// README: Delivery orchestrator; messaging deep link first, then the form relay, each with one fallback.
package delivery

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	relay   Relay
	contact Contact
	pause   time.Duration
	log     *zap.Logger
}

func NewService(relay Relay, contact Contact, pause time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{relay: relay, contact: contact, pause: pause, log: log}
}

// Deliver runs both channels in sequence and reports each outcome. It never
// retries and keeps no record of the attempt.
func (s *Service) Deliver(ctx context.Context, env Envelope, opener Opener) Result {
	var res Result
	res.Messaging = s.sendMessaging(ctx, env, opener)
	s.wait(ctx)
	res.Relay = s.sendRelay(ctx, env, opener)

	s.log.Info("booking delivered",
		zap.String("reference", env.Reference),
		zap.Stringer("messaging", res.Messaging.Outcome),
		zap.Stringer("relay", res.Relay.Outcome),
	)
	return res
}

func (s *Service) sendMessaging(ctx context.Context, env Envelope, opener Opener) ChannelResult {
	primary := MessagingLink(s.contact.WhatsApp, env.Message)
	if opener.CanOpen(ctx, primary) {
		err := opener.Open(ctx, primary)
		if err == nil {
			return ChannelResult{Outcome: Primary, URI: primary}
		}
		s.log.Debug("messaging app failed to open", zap.String("reference", env.Reference), zap.Error(err))
	}

	fallback := WebMessagingLink(s.contact.WhatsApp, env.Message)
	if err := opener.Open(ctx, fallback); err != nil {
		s.log.Warn("messaging fallback failed", zap.String("reference", env.Reference), zap.Error(err))
		return failed(fallback, err)
	}
	return ChannelResult{Outcome: Fallback, URI: fallback}
}

func (s *Service) sendRelay(ctx context.Context, env Envelope, opener Opener) ChannelResult {
	var relayErr error
	if s.relay != nil {
		relayErr = s.relay.Send(ctx, env.Fields)
		if relayErr == nil {
			return ChannelResult{Outcome: Primary, URI: s.relay.Endpoint()}
		}
		s.log.Warn("form relay failed", zap.String("reference", env.Reference), zap.Error(relayErr))
	}

	mail := MailLink(s.contact.Email, env.Subject, env.Message)
	if !opener.CanOpen(ctx, mail) {
		return failed(mail, errors.Join(relayErr, ErrUnsupportedScheme))
	}
	if err := opener.Open(ctx, mail); err != nil {
		return failed(mail, errors.Join(relayErr, err))
	}
	return ChannelResult{Outcome: Fallback, URI: mail}
}

func (s *Service) wait(ctx context.Context) {
	if s.pause <= 0 {
		return
	}
	t := time.NewTimer(s.pause)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
