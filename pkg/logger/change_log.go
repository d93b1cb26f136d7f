package logger

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"restaurants/pkg/code"
)

// debug 打开后所有 logger 放行 debug 级别
var debug atomic.Bool

type debugSwitch struct {
	Debug *bool `json:"debug" binding:"required"`
}

// RegisterLog mounts GET and PUT /log to read and flip the debug switch at runtime
func RegisterLog(router gin.IRoutes) {
	router.GET("/log", func(c *gin.Context) {
		enabled := debug.Load()
		c.JSON(http.StatusOK, debugSwitch{Debug: &enabled})
	})
	router.PUT("/log", func(c *gin.Context) {
		var req debugSwitch
		if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
			e := code.ErrInvalidParam.WithResult(err.Error())
			c.AbortWithStatusJSON(e.StatusCode(), e)
			return
		}
		debug.Store(*req.Debug)
		c.Status(http.StatusNoContent)
	})
}
