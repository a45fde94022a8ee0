package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin" gorm:"default:false"`
	Favourites   []Movie   `json:"favourites,omitempty" gorm:"many2many:user_favourites"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// UpdateUserDto 更新用户资料的表单数据
// IsAdmin 使用指针以区分“未传”和“显式传 false”
type UpdateUserDto struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	IsAdmin  *bool  `json:"is_admin"`
}

// ToggleFavouriteDto 收藏/取消收藏的请求体
type ToggleFavouriteDto struct {
	MovieID int `json:"movie_id" binding:"required"`
}
