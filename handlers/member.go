package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	Members *services.MemberService
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.Members.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) SetRole(c *gin.Context) {
	memberID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.SetRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.Members.SetRole(c.Request.Context(), middleware.GetUser(c), memberID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
