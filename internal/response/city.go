package response

type City struct {
	// 城市ID
	ID int `json:"id"`
	// 城市名称
	Name string `json:"name"`
}
