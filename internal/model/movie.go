package model

import (
	"time"
)

// Movie 电影模型
type Movie struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Slug           string    `json:"slug" db:"slug" gorm:"uniqueIndex"`
	Poster         string    `json:"poster" db:"poster"`
	BigPoster      string    `json:"big_poster" db:"big_poster"`
	VideoURL       string    `json:"video_url" db:"video_url"`
	Rating         float64   `json:"rating" db:"rating" gorm:"index"`
	CountOpened    int       `json:"count_opened" db:"count_opened" gorm:"default:0"`
	Genres         []Genre   `json:"genres" gorm:"many2many:movie_genres"`
	Actors         []Actor   `json:"actors" gorm:"many2many:movie_actors"`
	IsSendTelegram bool      `json:"-" db:"is_send_telegram" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
}

// MovieDto 后台编辑电影的表单数据
type MovieDto struct {
	Title     string  `json:"title" binding:"required"`
	Slug      string  `json:"slug" binding:"required,slug"`
	Poster    string  `json:"poster" binding:"required"`
	BigPoster string  `json:"big_poster" binding:"required"`
	VideoURL  string  `json:"video_url" binding:"required"`
	Rating    float64 `json:"rating"`
	GenreIDs  []int   `json:"genre_ids"`
	ActorIDs  []int   `json:"actor_ids"`
}

// ByGenresDto 按分类查询电影的请求体
type ByGenresDto struct {
	GenreIDs []int `json:"genre_ids" binding:"required,min=1"`
}

// SlugDto 按 slug 操作的请求体（如增加浏览量）
type SlugDto struct {
	Slug string `json:"slug" binding:"required"`
}
