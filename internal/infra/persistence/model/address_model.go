package model

// AddressColumns is the city/street/zipcode column set embedded in the
// members and deliveries tables.
type AddressColumns struct {
	City    string `gorm:"column:city;type:varchar(100)"`
	Street  string `gorm:"column:street;type:varchar(255)"`
	Zipcode string `gorm:"column:zipcode;type:varchar(20)"`
}
