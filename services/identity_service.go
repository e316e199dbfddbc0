package services

import (
	"log"
	"strings"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/storage"
	"github.com/nantel10/code-baba/utils"

	webpush "github.com/SherClockHolmes/webpush-go"
)

type IdentityService struct {
	store *storage.Store
	ident models.Identity
}

// NewIdentityService loads the deployment identity, generating the
// invite codes and VAPID key pair on first boot. The record never
// changes afterwards, so it is read once and kept in memory.
func NewIdentityService(store *storage.Store) (*IdentityService, error) {
	s := &IdentityService{store: store}

	found, err := store.Load(&s.ident)
	if err != nil {
		return nil, err
	}
	if found {
		return s, nil
	}

	private, public, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		return nil, err
	}
	s.ident = models.Identity{
		GroupCode:       utils.GenerateCode("BABA-", 6),
		AdminCode:       utils.GenerateCode("ADMIN-", 8),
		VAPIDPublicKey:  public,
		VAPIDPrivateKey: private,
	}
	if err := store.Save(&s.ident); err != nil {
		return nil, err
	}
	log.Printf("first boot: group code %s, admin code %s", s.ident.GroupCode, s.ident.AdminCode)
	return s, nil
}

func (s *IdentityService) Identity() models.Identity {
	return s.ident
}

func (s *IdentityService) PublicKey() string {
	return s.ident.VAPIDPublicKey
}

// Verify matches a code against both stored codes, case-insensitively.
func (s *IdentityService) Verify(code string) (models.Tier, bool) {
	switch {
	case strings.EqualFold(code, s.ident.AdminCode):
		return models.TierAdmin, true
	case strings.EqualFold(code, s.ident.GroupCode):
		return models.TierMember, true
	default:
		return models.TierNone, false
	}
}
