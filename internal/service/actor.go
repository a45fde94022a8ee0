package service

import (
	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
)

// ActorService 演员服务
type ActorService struct {
	actors *repository.ActorRepository
}

func NewActorService(actors *repository.ActorRepository) *ActorService {
	return &ActorService{actors: actors}
}

// GetAll 获取演员列表，searchTerm 非空时按姓名/slug 搜索
func (s *ActorService) GetAll(searchTerm string) ([]*model.Actor, error) {
	return s.actors.FindAll(searchTerm)
}

// BySlug 根据 slug 获取演员
func (s *ActorService) BySlug(slug string) (*model.Actor, error) {
	actor, err := s.actors.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, repository.ErrNotFound
	}
	return actor, nil
}

// ==================== 后台管理 ====================

// ByID 根据 ID 获取演员
func (s *ActorService) ByID(id int) (*model.Actor, error) {
	actor, err := s.actors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, repository.ErrNotFound
	}
	return actor, nil
}

// Create 创建一条空白演员记录供后台编辑，返回新 ID
func (s *ActorService) Create() (int, error) {
	return s.actors.CreateBlank()
}

// Update 更新演员
func (s *ActorService) Update(id int, dto *model.ActorDto) (*model.Actor, error) {
	actor, err := s.actors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, repository.ErrNotFound
	}

	actor.Name = dto.Name
	actor.Slug = dto.Slug
	actor.Photo = dto.Photo

	if err := s.actors.Save(actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// Delete 删除演员并返回被删除的记录
func (s *ActorService) Delete(id int) (*model.Actor, error) {
	actor, err := s.actors.Delete(id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, repository.ErrNotFound
	}
	return actor, nil
}
