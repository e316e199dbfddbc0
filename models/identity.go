package models

// Identity holds the deployment-wide credentials: the two invite codes
// and the VAPID key pair used to sign outbound push payloads. Generated
// once at first boot and immutable afterwards; deleting the config file
// regenerates everything and invalidates previously shared codes.
type Identity struct {
	GroupCode       string `json:"groupCode"`
	AdminCode       string `json:"adminCode"`
	VAPIDPublicKey  string `json:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey"`
}

// Tier is the privilege level granted by an invite code.
type Tier int

const (
	TierNone Tier = iota
	TierMember
	TierAdmin
)
