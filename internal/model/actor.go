package model

import (
	"time"
)

// Actor 演员模型
type Actor struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Photo     string    `json:"photo" db:"photo"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// ActorDto 后台编辑演员的表单数据
type ActorDto struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required,slug"`
	Photo string `json:"photo"`
}
