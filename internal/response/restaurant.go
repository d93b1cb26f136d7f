package response

type Restaurant struct {
	// 餐厅ID
	ID int `json:"id"`
	// 餐厅名称
	Name string `json:"name"`
	// 所属城市，未加载时为null
	City *City `json:"city"`
}
