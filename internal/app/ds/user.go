package ds

// User пароль хранится только в виде bcrypt-хеша и не отдаётся наружу
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin  bool   `gorm:"type:boolean;default:false;not null" json:"isAdmin"`
}
