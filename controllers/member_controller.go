package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/services"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	Roster *services.RosterService
}

func NewMemberController(roster *services.RosterService) *MemberController {
	return &MemberController{Roster: roster}
}

// memberView is what admins see: the raw push subscription never
// leaves the server, only whether one exists.
type memberView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinedAt time.Time `json:"joinedAt"`
	HasPush  bool      `json:"hasPush"`
	HasPhone bool      `json:"hasPhone"`
}

func toView(m models.Member) memberView {
	return memberView{
		ID:       m.ID,
		Name:     m.Name,
		Phone:    m.Phone,
		IsAdmin:  m.IsAdmin,
		JoinedAt: m.JoinedAt,
		HasPush:  m.HasPush(),
		HasPhone: m.Phone != "",
	}
}

// GET /api/members
func (mc *MemberController) List(c *gin.Context) {
	members := mc.Roster.List()
	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, toView(m))
	}
	c.JSON(http.StatusOK, gin.H{"members": views})
}

type createMemberInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// POST /api/admin/members — admin-added members start without a push
// subscription; they pick one up if they later subscribe from a browser.
func (mc *MemberController) Create(c *gin.Context) {
	var input createMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	member, err := mc.Roster.Add(input.Name, nil, input.Phone, input.IsAdmin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      member.ID,
		"member":  toView(*member),
	})
}

type updateMemberInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	IsAdmin *bool   `json:"isAdmin"`
}

// PUT /api/admin/members/:id
func (mc *MemberController) Update(c *gin.Context) {
	var input updateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	member, err := mc.Roster.Update(c.Param("id"), services.MemberUpdate{
		Name:    input.Name,
		Phone:   input.Phone,
		IsAdmin: input.IsAdmin,
	})
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "member": toView(*member)})
}

// DELETE /api/admin/members/:id
func (mc *MemberController) Delete(c *gin.Context) {
	err := mc.Roster.Remove(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
