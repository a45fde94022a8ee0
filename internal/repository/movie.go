package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindAll 获取电影列表，searchTerm 非空时按标题模糊匹配
func (r *MovieRepository) FindAll(searchTerm string) ([]*model.Movie, error) {
	var movies []*model.Movie
	query := r.db.Preload("Genres").Preload("Actors").Order("created_at DESC")
	if searchTerm != "" {
		query = query.Where("lower(title) LIKE lower(?)", "%"+searchTerm+"%")
	}
	err := query.Find(&movies).Error
	return movies, err
}

// FindBySlug 根据 slug 查找电影（含分类与演员）
func (r *MovieRepository) FindBySlug(slug string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Preload("Genres").Preload("Actors").Where("slug = ?", slug).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Preload("Genres").Preload("Actors").First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Exists 判断电影是否存在
func (r *MovieRepository) Exists(id int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindByActor 获取某演员参演的全部电影
func (r *MovieRepository) FindByActor(actorID int) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor_id = ?", actorID).
		Order("movies.created_at DESC").
		Find(&movies).Error
	return movies, err
}

// FindByGenres 获取分类集合下的全部电影（多个分类取并集，去重）
func (r *MovieRepository) FindByGenres(genreIDs []int) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.
		Distinct("movies.*").
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id IN ?", genreIDs).
		Order("movies.id").
		Find(&movies).Error
	return movies, err
}

// IncrementCountOpened 原子自增浏览量并返回更新后的电影，slug 不存在返回 nil
func (r *MovieRepository) IncrementCountOpened(slug string) (*model.Movie, error) {
	tx := r.db.Model(&model.Movie{}).Where("slug = ?", slug).
		UpdateColumn("count_opened", gorm.Expr("count_opened + 1"))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindBySlug(slug)
}

// FindMostPopular 获取热门电影（浏览量大于 0，按浏览量倒序）
func (r *MovieRepository) FindMostPopular() ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Preload("Genres").
		Where("count_opened > 0").
		Order("count_opened DESC").
		Find(&movies).Error
	return movies, err
}

// CreateBlank 创建一条空白电影记录，返回新 ID（后台先建后填）
func (r *MovieRepository) CreateBlank() (int, error) {
	movie := &model.Movie{}
	if err := r.db.Create(movie).Error; err != nil {
		return 0, err
	}
	return movie.ID, nil
}

// Save 保存电影并整体替换分类/演员关联
func (r *MovieRepository) Save(movie *model.Movie) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Actors").Save(movie).Error; err != nil {
			return err
		}
		if err := tx.Model(movie).Association("Genres").Replace(movie.Genres); err != nil {
			return err
		}
		return tx.Model(movie).Association("Actors").Replace(movie.Actors)
	})
}

// SetNotified 标记该电影的发布通知已发送
func (r *MovieRepository) SetNotified(id int) error {
	return r.db.Model(&model.Movie{}).Where("id = ?", id).
		UpdateColumn("is_send_telegram", true).Error
}

// Delete 删除电影并返回被删除的记录，不存在返回 nil
func (r *MovieRepository) Delete(id int) (*model.Movie, error) {
	movie, err := r.FindByID(id)
	if err != nil || movie == nil {
		return nil, err
	}
	// 连同关联表记录一起删除
	if err := r.db.Select(clause.Associations).Delete(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}
