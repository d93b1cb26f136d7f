package request

// City 创建和更新城市的请求体
type City struct {
	// 城市ID，由调用方指定
	ID int `json:"id"`
	// 城市名称
	Name string `json:"name"`
}

// IDURI binds the :id path parameter
type IDURI struct {
	ID int `uri:"id"`
}
