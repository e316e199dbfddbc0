package controllers

import (
	"net/http"
	"strings"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Identity  *services.IdentityService
	Messages  *services.MessageService
	Broadcast *services.BroadcastService
}

func NewMessageController(identity *services.IdentityService, messages *services.MessageService, broadcast *services.BroadcastService) *MessageController {
	return &MessageController{Identity: identity, Messages: messages, Broadcast: broadcast}
}

// GET /api/messages
func (mc *MessageController) List(c *gin.Context) {
	c.JSON(http.StatusOK, mc.Messages.Recent())
}

type sendInput struct {
	Message    string `json:"message"`
	AdminCode  string `json:"adminCode"`
	SenderName string `json:"senderName"`
}

// POST /api/send — broadcast to the whole roster. There is no
// deduplication: a double submit sends everything twice.
func (mc *MessageController) Send(c *gin.Context) {
	var input sendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	tier, ok := mc.Identity.Verify(input.AdminCode)
	if !ok || tier != models.TierAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin code required"})
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	msg, res, err := mc.Broadcast.Send(c.Request.Context(), input.Message, input.SenderName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msg,
		"results": gin.H{
			"sent":           res.PushSent,
			"failed":         res.PushFailed,
			"noSubscription": res.PushNoSubscription,
		},
		"smsResults": gin.H{
			"sent":   res.SmsSent,
			"failed": res.SmsFailed,
		},
	})
}
