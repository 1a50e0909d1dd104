package model

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	TaskID    uint      `gorm:"not null;index" json:"task_id"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
