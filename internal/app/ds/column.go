package ds

type Column struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ColumnTitle string `gorm:"type:varchar(255);not null" json:"columnTitle"`
	OwnerID     uint   `gorm:"not null;index" json:"ownerId"`
}
