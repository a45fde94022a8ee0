package model

import (
	"time"
)

// Genre 分类模型
type Genre struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// GenreDto 后台编辑分类的表单数据
type GenreDto struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Collection 分类合集（首页展示，封面取该分类下第一部电影的大海报）
type Collection struct {
	ID    string `json:"_id"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
