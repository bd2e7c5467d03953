package ds

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:varchar(255);not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"authorId"`
	CardID   uint   `gorm:"not null;index" json:"cardId"`
}
