package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nantel10/code-baba/models"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone signals that a push endpoint is permanently
// dead (the push service answered 404/410), as opposed to a transient
// delivery failure.
var ErrSubscriptionGone = errors.New("push subscription no longer exists")

// PushSender delivers one payload to one opaque subscription.
type PushSender interface {
	Send(ctx context.Context, subscription json.RawMessage, payload []byte) error
}

type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	client     *http.Client
}

func NewWebPushSender(ident models.Identity, subscriber string) *WebPushSender {
	return &WebPushSender{
		publicKey:  ident.VAPIDPublicKey,
		privateKey: ident.VAPIDPrivateKey,
		subscriber: subscriber,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebPushSender) Send(ctx context.Context, subscription json.RawMessage, payload []byte) error {
	var sub webpush.Subscription
	if err := json.Unmarshal(subscription, &sub); err != nil {
		return fmt.Errorf("bad subscription: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &sub, &webpush.Options{
		HTTPClient:      w.client,
		Subscriber:      w.subscriber,
		VAPIDPublicKey:  w.publicKey,
		VAPIDPrivateKey: w.privateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}
	return nil
}
