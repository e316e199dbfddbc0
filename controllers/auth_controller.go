package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Identity *services.IdentityService
	Roster   *services.RosterService
}

func NewAuthController(identity *services.IdentityService, roster *services.RosterService) *AuthController {
	return &AuthController{Identity: identity, Roster: roster}
}

// GET /api/vapid-public-key
func (ac *AuthController) VapidPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": ac.Identity.PublicKey()})
}

type verifyCodeInput struct {
	Code string `json:"code"`
}

// POST /api/verify-code
func (ac *AuthController) VerifyCode(c *gin.Context) {
	var input verifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	tier, ok := ac.Identity.Verify(input.Code)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "isAdmin": tier == models.TierAdmin})
}

type checkNameInput struct {
	Name string `json:"name"`
}

// POST /api/check-name
func (ac *AuthController) CheckName(c *gin.Context) {
	var input checkNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if ac.Roster.IsNameUnique(input.Name, "") {
		c.JSON(http.StatusOK, gin.H{"available": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": false, "error": "name already taken"})
}

type subscribeInput struct {
	Subscription json.RawMessage `json:"subscription"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Phone        string          `json:"phone"`
}

// POST /api/subscribe — self-service join with a browser push
// subscription. The invite code decides the tier.
func (ac *AuthController) Subscribe(c *gin.Context) {
	var input subscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	tier, ok := ac.Identity.Verify(input.Code)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid code"})
		return
	}

	member, err := ac.Roster.Add(input.Name, input.Subscription, input.Phone, tier == models.TierAdmin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      member.ID,
		"isAdmin": member.IsAdmin,
	})
}

type loginInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// POST /api/login — lookup only, never creates a member.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	member, err := ac.Roster.Login(input.Name, input.Code)
	switch {
	case errors.Is(err, services.ErrInvalidCode):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid code"})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no member with that name"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      member.ID,
		"name":    member.Name,
		"isAdmin": member.IsAdmin,
		"phone":   member.Phone,
	})
}

// POST /api/logout — sessions live entirely in the client; nothing to
// tear down server-side.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
