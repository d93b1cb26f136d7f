package restaurant

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"restaurants/internal/code"
	"restaurants/internal/request"
	"restaurants/internal/service"
	"restaurants/pkg/resp"
)

type RestaurantController struct {
	srv service.Service
}

func NewRestaurantController(srv service.Service) *RestaurantController {
	return &RestaurantController{
		srv: srv,
	}
}

// List 获取餐厅列表，包含所属城市
func (rc *RestaurantController) List(c *gin.Context) {
	result, err := rc.srv.Restaurants().List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// Get 查询餐厅
func (rc *RestaurantController) Get(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := rc.srv.Restaurants().Get(c.Request.Context(), uri.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if result == nil {
		resp.NotFound(c)
		return
	}
	resp.Success(c, result)
}

// Create 创建餐厅
func (rc *RestaurantController) Create(c *gin.Context) {
	var req request.Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := rc.srv.Restaurants().Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result.ID, result)
}

// Update 更新餐厅，路径ID必须与请求体ID一致
func (rc *RestaurantController) Update(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	var req request.Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if uri.ID != req.ID {
		resp.Error(c, code.ErrIDMismatch.WithResult(
			fmt.Sprintf("path id %d does not match body id %d", uri.ID, req.ID)))
		return
	}
	if _, err := rc.srv.Restaurants().Update(c.Request.Context(), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Delete 删除餐厅并返回删除前的数据
func (rc *RestaurantController) Delete(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := rc.srv.Restaurants().Delete(c.Request.Context(), uri.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if result == nil {
		resp.NotFound(c)
		return
	}
	resp.Success(c, result)
}
