package models

// Doctor represents a practitioner that can be booked into appointments.
// Person name fields are kept flat; there is no separate person entity.
type Doctor struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	FirstName       string `gorm:"size:100;not null" json:"first_name"`
	PaternalSurname string `gorm:"size:100;not null" json:"paternal_surname"`
	MaternalSurname string `gorm:"size:100;not null" json:"maternal_surname"`
	Specialty       string `gorm:"size:100;not null" json:"specialty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
