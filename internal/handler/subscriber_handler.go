package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe 订阅邮件列表。重复订阅返回已有记录，不产生重复行。
func (a *API) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req, "invalid email") {
		return
	}

	subscriber, err := a.subscribers.Add(req.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "subscribed successfully",
		"id":      subscriber.ID,
		"email":   subscriber.Email,
	})
}

// GetSubscribers 获取订阅者列表
func (a *API) GetSubscribers(c *gin.Context) {
	subscribers, err := a.subscribers.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list subscribers")
		return
	}

	c.JSON(http.StatusOK, newSubscriberResponses(subscribers))
}
