package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}

// SubmitContact 接收联系表单留言并保存，返回留言凭据。
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "invalid contact data") {
		return
	}

	record, err := a.contacts.Record(req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "message sent successfully",
		"reference": record.Reference,
	})
}
