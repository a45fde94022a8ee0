package service

import (
	"fmt"
	"log"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// Notifier 上新通知网关
type Notifier interface {
	SendPhoto(photo, caption, chatID string) error
	SendMessage(text string, opts *MessageOptions) error
}

// MovieService 电影目录服务
type MovieService struct {
	movies   *repository.MovieRepository
	genres   *repository.GenreRepository
	actors   *repository.ActorRepository
	notifier Notifier
}

func NewMovieService(
	movies *repository.MovieRepository,
	genres *repository.GenreRepository,
	actors *repository.ActorRepository,
	notifier Notifier,
) *MovieService {
	return &MovieService{
		movies:   movies,
		genres:   genres,
		actors:   actors,
		notifier: notifier,
	}
}

// GetAll 获取电影列表，searchTerm 非空时按标题搜索
func (s *MovieService) GetAll(searchTerm string) ([]*model.Movie, error) {
	return s.movies.FindAll(searchTerm)
}

// BySlug 根据 slug 获取电影详情（含分类与演员）
func (s *MovieService) BySlug(slug string) (*model.Movie, error) {
	movie, err := s.movies.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}
	return movie, nil
}

// ByActor 获取某演员参演的电影列表
func (s *MovieService) ByActor(actorID int) ([]*model.Movie, error) {
	return s.movies.FindByActor(actorID)
}

// ByGenres 获取分类集合下的电影列表（并集去重）
func (s *MovieService) ByGenres(genreIDs []int) ([]*model.Movie, error) {
	return s.movies.FindByGenres(genreIDs)
}

// UpdateCountOpened 电影每被打开一次浏览量加一
// 不做重试：失败直接上抛，宁可少记也不重复计数
func (s *MovieService) UpdateCountOpened(slug string) (*model.Movie, error) {
	movie, err := s.movies.IncrementCountOpened(slug)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}
	return movie, nil
}

// GetMostPopular 获取热门电影（按浏览量倒序，含分类）
func (s *MovieService) GetMostPopular() ([]*model.Movie, error) {
	return s.movies.FindMostPopular()
}

// ==================== 后台管理 ====================

// ByID 根据 ID 获取电影
func (s *MovieService) ByID(id int) (*model.Movie, error) {
	movie, err := s.movies.FindByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}
	return movie, nil
}

// Create 创建一条空白电影记录供后台编辑，返回新 ID
func (s *MovieService) Create() (int, error) {
	return s.movies.CreateBlank()
}

// Update 更新电影，首次发布时向 Telegram 频道推送上新通知
// 通知成功后才落已通知标记，失败则留待下次更新时重试
func (s *MovieService) Update(id int, dto *model.MovieDto) (*model.Movie, error) {
	movie, err := s.movies.FindByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}

	movie.Title = dto.Title
	movie.Slug = dto.Slug
	movie.Poster = dto.Poster
	movie.BigPoster = dto.BigPoster
	movie.VideoURL = dto.VideoURL
	movie.Rating = dto.Rating

	// 分类和演员必须已存在，否则 Replace 关联会插入空白记录
	genres, err := s.genres.FindByIDs(dto.GenreIDs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(dto.GenreIDs) {
		return nil, repository.ErrNotFound
	}
	actors, err := s.actors.FindByIDs(dto.ActorIDs)
	if err != nil {
		return nil, err
	}
	if len(actors) != len(dto.ActorIDs) {
		return nil, repository.ErrNotFound
	}
	movie.Genres = genres
	movie.Actors = actors

	if err := s.movies.Save(movie); err != nil {
		return nil, err
	}
	utils.CacheDelete(collectionsCacheKey)

	if !movie.IsSendTelegram {
		if err := s.sendNotification(movie); err != nil {
			log.Printf("[Telegram] 上新通知发送失败 (movie=%d): %v", movie.ID, err)
		} else if err := s.movies.SetNotified(movie.ID); err != nil {
			log.Printf("[Telegram] 写入已通知标记失败 (movie=%d): %v", movie.ID, err)
		} else {
			movie.IsSendTelegram = true
		}
	}

	return movie, nil
}

// Delete 删除电影并返回被删除的记录
func (s *MovieService) Delete(id int) (*model.Movie, error) {
	movie, err := s.movies.Delete(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}
	utils.CacheDelete(collectionsCacheKey)
	return movie, nil
}

// sendNotification 推送上新通知：先发海报，再发带观看按钮的标题消息
func (s *MovieService) sendNotification(movie *model.Movie) error {
	photo := movie.BigPoster
	if photo == "" {
		photo = movie.Poster
	}
	if photo != "" {
		if err := s.notifier.SendPhoto(photo, "", ""); err != nil {
			return err
		}
	}

	msg := fmt.Sprintf("<b>%s</b>", movie.Title)
	opts := &MessageOptions{}
	if movie.VideoURL != "" {
		opts.ReplyMarkup = &ReplyMarkup{
			InlineKeyboard: [][]InlineButton{
				{{Text: "去观看", URL: movie.VideoURL}},
			},
		}
	}
	return s.notifier.SendMessage(msg, opts)
}
