package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings 返回站点外观配置的扁平键值对。
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.SiteSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
