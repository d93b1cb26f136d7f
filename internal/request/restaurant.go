package request

// Restaurant 创建和更新餐厅的请求体
type Restaurant struct {
	// 餐厅ID，由调用方指定
	ID int `json:"id"`
	// 餐厅名称
	Name string `json:"name"`
	// 所属城市ID
	CityID int `json:"cityId"`
}
