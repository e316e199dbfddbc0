package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/nantel10/code-baba/models"
)

// One slow endpoint must not hold up the rest of the roster.
const attemptTimeout = 15 * time.Second

type BroadcastResult struct {
	PushSent           int `json:"pushSent"`
	PushFailed         int `json:"pushFailed"`
	PushNoSubscription int `json:"pushNoSubscription"`
	SmsSent            int `json:"smsSent"`
	SmsFailed          int `json:"smsFailed"`
}

// BroadcastService fans one message out to every member over push and,
// when configured, SMS. The channels are independent: every member is
// attempted on both, and a failure on one never affects the other.
type BroadcastService struct {
	roster   *RosterService
	messages *MessageService
	push     PushSender
	sms      SMSSender
}

func NewBroadcastService(roster *RosterService, messages *MessageService, push PushSender, sms SMSSender) *BroadcastService {
	return &BroadcastService{
		roster:   roster,
		messages: messages,
		push:     push,
		sms:      sms,
	}
}

// Send appends the message to the log, then walks the roster snapshot
// once per channel, sequentially, counting per-member outcomes. Failed
// deliveries are counted and abandoned; there are no retries. A push
// endpoint that reports permanent invalidation gets its subscription
// cleared after the loop, but the member record stays.
//
// Calling Send twice with the same text sends everything twice; there
// is no deduplication key.
func (b *BroadcastService) Send(ctx context.Context, text, sender string) (models.Message, BroadcastResult, error) {
	msg, err := b.messages.Append(text, sender)
	if err != nil {
		return models.Message{}, BroadcastResult{}, err
	}

	payload, err := json.Marshal(map[string]string{
		"title": msg.Sender,
		"body":  msg.Text,
		"id":    msg.ID,
	})
	if err != nil {
		return models.Message{}, BroadcastResult{}, err
	}

	members := b.roster.List()
	var res BroadcastResult

	var expired []string
	for _, m := range members {
		if !m.HasPush() {
			res.PushNoSubscription++
			continue
		}
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		err := b.push.Send(attemptCtx, m.Subscription, payload)
		cancel()
		if err == nil {
			res.PushSent++
			continue
		}
		res.PushFailed++
		if errors.Is(err, ErrSubscriptionGone) {
			expired = append(expired, m.ID)
		}
	}
	for _, id := range expired {
		if err := b.roster.ClearPushEndpoint(id); err != nil {
			log.Printf("broadcast: clearing expired subscription %s: %v", id, err)
		}
	}

	if b.sms != nil {
		for _, m := range members {
			if m.Phone == "" {
				continue
			}
			attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
			err := b.sms.Send(attemptCtx, m.Phone, msg.Text)
			cancel()
			if err == nil {
				res.SmsSent++
			} else {
				res.SmsFailed++
			}
		}
	}

	log.Printf("broadcast %s: push %d sent / %d failed / %d no subscription, sms %d sent / %d failed",
		msg.ID, res.PushSent, res.PushFailed, res.PushNoSubscription, res.SmsSent, res.SmsFailed)
	return msg, res, nil
}
