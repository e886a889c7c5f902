package app_model

import "time"

// PetStory 领养故事
type PetStory struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	Title     string       `json:"title" gorm:"size:200;not null"`
	Content   string       `json:"content" gorm:"type:text;not null"`
	Status    ReviewStatus `json:"status" gorm:"size:20;index;default:pending"`
	Likes     int          `json:"likes" gorm:"default:0"`
	UserID    uint         `json:"user_id" gorm:"index;not null"`
	PetID     uint         `json:"pet_id" gorm:"index"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName 指定表名
func (PetStory) TableName() string {
	return "pet_stories"
}
