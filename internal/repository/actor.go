package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindAll 获取演员列表，searchTerm 非空时按姓名/slug 模糊匹配
func (r *ActorRepository) FindAll(searchTerm string) ([]*model.Actor, error) {
	var actors []*model.Actor
	query := r.db.Order("created_at DESC")
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("lower(name) LIKE lower(?) OR lower(slug) LIKE lower(?)", pattern, pattern)
	}
	err := query.Find(&actors).Error
	return actors, err
}

// FindBySlug 根据 slug 查找演员
func (r *ActorRepository) FindBySlug(slug string) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("slug = ?", slug).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(id int) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.First(&actor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindByIDs 按 ID 集合查找演员
func (r *ActorRepository) FindByIDs(ids []int) ([]model.Actor, error) {
	var actors []model.Actor
	if len(ids) == 0 {
		return actors, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&actors).Error
	return actors, err
}

// CreateBlank 创建一条空白演员记录，返回新 ID
func (r *ActorRepository) CreateBlank() (int, error) {
	actor := &model.Actor{}
	if err := r.db.Create(actor).Error; err != nil {
		return 0, err
	}
	return actor.ID, nil
}

// Save 保存演员
func (r *ActorRepository) Save(actor *model.Actor) error {
	return r.db.Save(actor).Error
}

// Delete 删除演员并返回被删除的记录，不存在返回 nil
func (r *ActorRepository) Delete(id int) (*model.Actor, error) {
	actor, err := r.FindByID(id)
	if err != nil || actor == nil {
		return nil, err
	}
	if err := r.db.Delete(actor).Error; err != nil {
		return nil, err
	}
	return actor, nil
}
