package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID 根据 ID 查找用户
func (r *UserRepository) FindByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll 获取用户列表，searchTerm 非空时按邮箱模糊匹配
func (r *UserRepository) FindAll(searchTerm string) ([]*model.User, error) {
	var users []*model.User
	query := r.db.Order("created_at DESC")
	if searchTerm != "" {
		query = query.Where("lower(email) LIKE lower(?)", "%"+searchTerm+"%")
	}
	err := query.Find(&users).Error
	return users, err
}

// Count 获取用户总数
func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// Save 保存用户
func (r *UserRepository) Save(user *model.User) error {
	return r.db.Omit("Favourites").Save(user).Error
}

// Delete 删除用户并返回被删除的记录，不存在返回 nil
func (r *UserRepository) Delete(id int) (*model.User, error) {
	user, err := r.FindByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	// 连同收藏关联一起删除
	if err := r.db.Select("Favourites").Delete(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindFavourites 获取用户收藏的电影列表（含分类）
func (r *UserRepository) FindFavourites(id int) ([]*model.Movie, error) {
	var user model.User
	err := r.db.Preload("Favourites.Genres").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	movies := make([]*model.Movie, 0, len(user.Favourites))
	for i := range user.Favourites {
		movies = append(movies, &user.Favourites[i])
	}
	return movies, nil
}

// FindFavouriteIDs 获取用户收藏的电影 ID 集合
func (r *UserRepository) FindFavouriteIDs(id int) ([]int, error) {
	var ids []int
	err := r.db.Table("user_favourites").
		Where("user_id = ?", id).
		Pluck("movie_id", &ids).Error
	return ids, err
}

// ReplaceFavourites 整体替换用户的收藏集合
func (r *UserRepository) ReplaceFavourites(userID int, movieIDs []int) error {
	movies := make([]model.Movie, 0, len(movieIDs))
	for _, movieID := range movieIDs {
		movies = append(movies, model.Movie{ID: movieID})
	}
	return r.db.Model(&model.User{ID: userID}).Association("Favourites").Replace(movies)
}
