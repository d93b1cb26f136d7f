package city

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"restaurants/internal/code"
	"restaurants/internal/request"
	"restaurants/internal/service"
	"restaurants/pkg/resp"
)

type CityController struct {
	srv service.Service
}

func NewCityController(srv service.Service) *CityController {
	return &CityController{
		srv: srv,
	}
}

// List 获取城市列表
func (cc *CityController) List(c *gin.Context) {
	result, err := cc.srv.Cities().List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// Get 查询城市
func (cc *CityController) Get(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := cc.srv.Cities().Get(c.Request.Context(), uri.ID)
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

// Create 创建城市
func (cc *CityController) Create(c *gin.Context) {
	var req request.City
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := cc.srv.Cities().Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result.ID, result)
}

// Update 更新城市，路径ID必须与请求体ID一致
func (cc *CityController) Update(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	var req request.City
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if uri.ID != req.ID {
		resp.Error(c, code.ErrIDMismatch.WithResult(
			fmt.Sprintf("path id %d does not match body id %d", uri.ID, req.ID)))
		return
	}
	if _, err := cc.srv.Cities().Update(c.Request.Context(), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Delete 删除城市并返回删除前的数据
func (cc *CityController) Delete(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := cc.srv.Cities().Delete(c.Request.Context(), uri.ID)
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

// Restaurants 获取城市下的餐厅列表
func (cc *CityController) Restaurants(c *gin.Context) {
	var uri request.IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := cc.srv.Restaurants().ListByCity(c.Request.Context(), uri.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}
