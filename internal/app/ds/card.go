package ds

type Card struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CardTitle string  `gorm:"type:varchar(255);not null" json:"cardTitle"`
	CardText  string  `gorm:"type:varchar(255);not null" json:"cardText"`
	ColumnID  uint    `gorm:"not null;index" json:"columnId"`
	OwnerID   uint    `gorm:"not null;index" json:"ownerId"`
	ImageURL  *string `gorm:"type:varchar(255)" json:"imageUrl,omitempty"` // имя объекта в MinIO
}
