package model

// City 城市信息表
type City struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);NOT NULL" json:"name"`

	Restaurants []Restaurant `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (City) TableName() string {
	return "city"
}

func (c *City) PK() int {
	return c.ID
}
