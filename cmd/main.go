package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/nantel10/code-baba/config"
	"github.com/nantel10/code-baba/controllers"
	"github.com/nantel10/code-baba/routes"
	"github.com/nantel10/code-baba/services"
	"github.com/nantel10/code-baba/storage"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("creating data dir: %v", err)
	}

	identity, err := services.NewIdentityService(storage.New(filepath.Join(cfg.DataDir, "config.json")))
	if err != nil {
		log.Fatalf("loading identity: %v", err)
	}
	roster, err := services.NewRosterService(identity, storage.New(filepath.Join(cfg.DataDir, "subscriptions.json")))
	if err != nil {
		log.Fatalf("loading roster: %v", err)
	}
	messages, err := services.NewMessageService(storage.New(filepath.Join(cfg.DataDir, "messages.json")))
	if err != nil {
		log.Fatalf("loading messages: %v", err)
	}

	push := services.NewWebPushSender(identity.Identity(), cfg.VAPIDSubscriber)

	var sms services.SMSSender
	if cfg.SMSEnabled {
		sender, err := services.NewSNSSender(context.Background(), cfg.AWSRegion, cfg.SMSSenderID)
		if err != nil {
			log.Printf("sms channel disabled: %v", err)
		} else {
			sms = sender
		}
	} else {
		log.Printf("sms channel disabled (SMS_ENABLED not set)")
	}

	broadcast := services.NewBroadcastService(roster, messages, push, sms)

	if _, err := os.Stat(cfg.PublicDir); err != nil {
		cfg.PublicDir = ""
	}

	r := routes.SetupRouter(routes.Deps{
		Identity:  identity,
		Auth:      controllers.NewAuthController(identity, roster),
		Members:   controllers.NewMemberController(roster),
		Messages:  controllers.NewMessageController(identity, messages, broadcast),
		PublicDir: cfg.PublicDir,
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
