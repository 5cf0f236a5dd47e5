package models

// Room represents a consultation room identified by number and floor
type Room struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Number int  `gorm:"not null" json:"number"`
	Floor  int  `gorm:"not null" json:"floor"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}
