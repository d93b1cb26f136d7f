package model

// Restaurant 餐厅信息表
type Restaurant struct {
	ID     int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name   string `gorm:"column:name;type:varchar(255);NOT NULL" json:"name"`
	CityID int    `gorm:"column:city_id;NOT NULL;index:idx_restaurant_city_id" json:"city_id"`

	// City is only filled when the query joins it
	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}

func (r *Restaurant) PK() int {
	return r.ID
}
