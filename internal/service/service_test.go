package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// newTestRepos 基于内存 sqlite 创建测试仓库
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库只允许单连接，避免连接池拿到不同的库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	// 每个测试用干净的全局缓存
	utils.InitCache()

	return repository.NewRepositories(db)
}

// fakeNotifier 记录调用的假通知网关
type fakeNotifier struct {
	photos   []string
	messages []string
	fail     bool
}

func (f *fakeNotifier) SendPhoto(photo, caption, chatID string) error {
	if f.fail {
		return errors.New("发送失败")
	}
	f.photos = append(f.photos, photo)
	return nil
}

func (f *fakeNotifier) SendMessage(text string, opts *MessageOptions) error {
	if f.fail {
		return errors.New("发送失败")
	}
	f.messages = append(f.messages, text)
	return nil
}

// createGenre 插入一个分类，createdAt 用于控制列表排序
func createGenre(t *testing.T, repos *repository.Repositories, name, slug string, createdAt time.Time) *model.Genre {
	t.Helper()
	genre := &model.Genre{
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
	}
	require.NoError(t, repos.Genre.Save(genre))
	return genre
}

// createActor 插入一个演员
func createActor(t *testing.T, repos *repository.Repositories, name, slug string) *model.Actor {
	t.Helper()
	actor := &model.Actor{
		Name: name,
		Slug: slug,
	}
	require.NoError(t, repos.Actor.Save(actor))
	return actor
}

// createMovie 插入一部电影并挂上分类
func createMovie(t *testing.T, repos *repository.Repositories, title, slug, bigPoster string, genres ...*model.Genre) *model.Movie {
	t.Helper()
	movie := &model.Movie{
		Title:     title,
		Slug:      slug,
		BigPoster: bigPoster,
	}
	for _, genre := range genres {
		movie.Genres = append(movie.Genres, *genre)
	}
	require.NoError(t, repos.Movie.Save(movie))
	return movie
}

// createUser 插入一个用户
func createUser(t *testing.T, repos *repository.Repositories, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, repos.User.Save(user))
	return user
}
