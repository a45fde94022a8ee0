package service

import (
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// collectionsCacheKey 分类合集的缓存键
const collectionsCacheKey = "genre:collections"

// collectionsCacheTTL 合集数据的缓存时长
const collectionsCacheTTL = 5 * time.Minute

// GenreService 分类服务
type GenreService struct {
	genres *repository.GenreRepository
	movies *repository.MovieRepository
	group  singleflight.Group
}

func NewGenreService(genres *repository.GenreRepository, movies *repository.MovieRepository) *GenreService {
	return &GenreService{
		genres: genres,
		movies: movies,
	}
}

// GetAll 获取分类列表，searchTerm 非空时按名称/slug/描述搜索
func (s *GenreService) GetAll(searchTerm string) ([]*model.Genre, error) {
	return s.genres.FindAll(searchTerm)
}

// BySlug 根据 slug 获取分类
func (s *GenreService) BySlug(slug string) (*model.Genre, error) {
	genre, err := s.genres.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, repository.ErrNotFound
	}
	return genre, nil
}

// GetCollections 获取分类合集：每个分类取其下第一部电影的大海报做封面，
// 没有电影的分类不出现在结果里。结果短暂缓存，并用 singleflight 合并并发重建
func (s *GenreService) GetCollections() ([]model.Collection, error) {
	if cached, ok := utils.CacheGet(collectionsCacheKey); ok {
		return cached.([]model.Collection), nil
	}

	result, err, _ := s.group.Do(collectionsCacheKey, func() (interface{}, error) {
		collections, err := s.buildCollections()
		if err != nil {
			return nil, err
		}
		utils.CacheSet(collectionsCacheKey, collections, collectionsCacheTTL)
		return collections, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.Collection), nil
}

// buildCollections 逐分类查询电影并投影成合集条目
func (s *GenreService) buildCollections() ([]model.Collection, error) {
	genres, err := s.genres.FindAll("")
	if err != nil {
		return nil, err
	}

	collections := make([]model.Collection, 0, len(genres))
	for _, genre := range genres {
		movies, err := s.movies.FindByGenres([]int{genre.ID})
		if err != nil {
			return nil, err
		}
		if len(movies) == 0 {
			continue
		}
		collections = append(collections, model.Collection{
			ID:    strconv.Itoa(genre.ID),
			Image: movies[0].BigPoster,
			Slug:  genre.Slug,
			Title: genre.Name,
		})
	}
	return collections, nil
}

// ==================== 后台管理 ====================

// ByID 根据 ID 获取分类
func (s *GenreService) ByID(id int) (*model.Genre, error) {
	genre, err := s.genres.FindByID(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, repository.ErrNotFound
	}
	return genre, nil
}

// Create 创建一条空白分类记录供后台编辑，返回新 ID
func (s *GenreService) Create() (int, error) {
	return s.genres.CreateBlank()
}

// Update 更新分类
func (s *GenreService) Update(id int, dto *model.GenreDto) (*model.Genre, error) {
	genre, err := s.genres.FindByID(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, repository.ErrNotFound
	}

	genre.Name = dto.Name
	genre.Slug = dto.Slug
	genre.Description = dto.Description
	genre.Icon = dto.Icon

	if err := s.genres.Save(genre); err != nil {
		return nil, err
	}
	utils.CacheDelete(collectionsCacheKey)
	return genre, nil
}

// Delete 删除分类并返回被删除的记录
func (s *GenreService) Delete(id int) (*model.Genre, error) {
	genre, err := s.genres.Delete(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, repository.ErrNotFound
	}
	utils.CacheDelete(collectionsCacheKey)
	return genre, nil
}
