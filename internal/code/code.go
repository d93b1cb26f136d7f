package code

import "restaurants/pkg/code"

// 01 城市与餐厅
var ErrIDMismatch = code.Froze("4000100001", "路径ID与请求体ID不一致")

// Loading registers the business codes, a clash with a builtin code fails startup
func Loading() error {
	return code.Register(ErrIDMismatch)
}
