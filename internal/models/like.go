package model

// Like keys on (user, task); the composite primary key makes a duplicate
// like a constraint violation rather than a second row.
type Like struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TaskID uint `gorm:"primaryKey;autoIncrement:false" json:"task_id"`
}
