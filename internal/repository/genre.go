package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// FindAll 获取分类列表，searchTerm 非空时按名称/slug/描述模糊匹配
func (r *GenreRepository) FindAll(searchTerm string) ([]*model.Genre, error) {
	var genres []*model.Genre
	query := r.db.Order("created_at DESC")
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where(
			"lower(name) LIKE lower(?) OR lower(slug) LIKE lower(?) OR lower(description) LIKE lower(?)",
			pattern, pattern, pattern,
		)
	}
	err := query.Find(&genres).Error
	return genres, err
}

// FindBySlug 根据 slug 查找分类
func (r *GenreRepository) FindBySlug(slug string) (*model.Genre, error) {
	var genre model.Genre
	err := r.db.Where("slug = ?", slug).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// FindByID 根据 ID 查找分类
func (r *GenreRepository) FindByID(id int) (*model.Genre, error) {
	var genre model.Genre
	err := r.db.First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// FindByIDs 按 ID 集合查找分类
func (r *GenreRepository) FindByIDs(ids []int) ([]model.Genre, error) {
	var genres []model.Genre
	if len(ids) == 0 {
		return genres, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

// CreateBlank 创建一条空白分类记录，返回新 ID
func (r *GenreRepository) CreateBlank() (int, error) {
	genre := &model.Genre{}
	if err := r.db.Create(genre).Error; err != nil {
		return 0, err
	}
	return genre.ID, nil
}

// Save 保存分类
func (r *GenreRepository) Save(genre *model.Genre) error {
	return r.db.Save(genre).Error
}

// Delete 删除分类并返回被删除的记录，不存在返回 nil
func (r *GenreRepository) Delete(id int) (*model.Genre, error) {
	genre, err := r.FindByID(id)
	if err != nil || genre == nil {
		return nil, err
	}
	if err := r.db.Delete(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}
