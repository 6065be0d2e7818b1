package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler - проверка живости сервиса и подключения к базе
type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Check - GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Database unavailable",
			"error":   "INTERNAL_ERROR",
		})
		return
	}

	h.RespondOK(c, "OK", nil)
}
