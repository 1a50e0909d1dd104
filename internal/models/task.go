package model

import (
	"time"

	"task-board.community/task-board/internal/constants"
)

// Task is a community request: a photo of something that needs doing, pinned
// to a location. It is created open, moves to pending_verification when a
// volunteer submits proof, and to completed when the author approves.
type Task struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	ImageURL      string               `gorm:"not null" json:"image_url"`
	ImagePublicID string               `gorm:"not null" json:"image_public_id"`
	Caption       string               `json:"caption,omitempty"`
	Latitude      float64              `gorm:"not null" json:"latitude"`
	Longitude     float64              `gorm:"not null" json:"longitude"`
	Status        constants.TaskStatus `gorm:"type:varchar(24);not null;index" json:"status"`
	ProofImageURL string               `json:"proof_image_url,omitempty"`
	CreatedAt     time.Time            `gorm:"index" json:"created_at"`

	AuthorID     uint  `gorm:"not null;index" json:"author_id"`
	ResolvedByID *uint `gorm:"index" json:"resolved_by_id,omitempty"`

	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ResolvedBy *User     `gorm:"foreignKey:ResolvedByID" json:"resolved_by,omitempty"`
	Comments   []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Likes      []Like    `gorm:"foreignKey:TaskID" json:"likes,omitempty"`
}
