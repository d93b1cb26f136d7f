package resp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurants/pkg/utils/v"
)

// Success writes 200 with data as JSON body, or 204 when there is nothing to return
func Success(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, data[0])
}

// Created writes 201, Location is the collection path the request was posted to plus id
func Created(c *gin.Context, id int, data interface{}) {
	c.Header(v.HeaderLocation, location(c.Request.URL.Path, id))
	c.JSON(http.StatusCreated, data)
}

func location(collection string, id int) string {
	return strings.TrimSuffix(collection, "/") + "/" + strconv.Itoa(id)
}

// NotFound writes 404 with an empty body
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}
