package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
)

func TestGenreService_GetAllSearch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)

	base := time.Now()
	createGenre(t, repos, "剧情", "drama", base)
	horror := createGenre(t, repos, "恐怖", "horror", base.Add(time.Second))
	horror.Description = "scary stories"
	require.NoError(t, repos.Genre.Save(horror))

	// 名称/slug/描述任一命中
	genres, err := svc.GetAll("horr")
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "恐怖", genres[0].Name)

	genres, err = svc.GetAll("scary")
	require.NoError(t, err)
	assert.Len(t, genres, 1)

	// 不传关键词按创建时间倒序返回全部
	genres, err = svc.GetAll("")
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "恐怖", genres[0].Name)
}

func TestGenreService_BySlug(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)

	createGenre(t, repos, "动画", "animation", time.Now())

	genre, err := svc.BySlug("animation")
	require.NoError(t, err)
	assert.Equal(t, "动画", genre.Name)

	_, err = svc.BySlug("no-such-genre")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenreService_Collections(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)

	// 固定夹具：两个有电影的分类 + 一个空分类，共三部电影
	base := time.Now()
	action := createGenre(t, repos, "动作", "action", base)
	comedy := createGenre(t, repos, "喜剧", "comedy", base.Add(time.Second))
	createGenre(t, repos, "纪录片", "documentary", base.Add(2*time.Second))

	first := createMovie(t, repos, "Die Hard", "die-hard", "https://cdn.example.com/die-hard-big.jpg", action)
	createMovie(t, repos, "Speed", "speed", "https://cdn.example.com/speed-big.jpg", action)
	createMovie(t, repos, "Airplane", "airplane", "https://cdn.example.com/airplane-big.jpg", comedy)

	collections, err := svc.GetCollections()
	require.NoError(t, err)

	// 空分类被剔除；顺序跟随分类列表（创建时间倒序）
	require.Len(t, collections, 2)
	assert.Equal(t, "喜剧", collections[0].Title)
	assert.Equal(t, "动作", collections[1].Title)

	// 封面取该分类下第一部电影的大海报
	assert.Equal(t, "https://cdn.example.com/die-hard-big.jpg", collections[1].Image)
	assert.Equal(t, first.BigPoster, collections[1].Image)

	// 输出形状固定为 {_id, image, slug, title}
	raw, err := json.Marshal(collections[1])
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.ElementsMatch(t, []string{"_id", "image", "slug", "title"}, keys(decoded))
	assert.Equal(t, "action", decoded["slug"])
}

func TestGenreService_CollectionsCacheInvalidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)

	genre := createGenre(t, repos, "动作", "action", time.Now())
	createMovie(t, repos, "Die Hard", "die-hard", "https://cdn.example.com/big.jpg", genre)

	collections, err := svc.GetCollections()
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "动作", collections[0].Title)

	// 更新分类会使缓存失效，重新构建能看到新名称
	_, err = svc.Update(genre.ID, &model.GenreDto{Name: "动作片", Slug: "action"})
	require.NoError(t, err)

	collections, err = svc.GetCollections()
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "动作片", collections[0].Title)
}

func TestGenreService_CollectionsInvalidatedByMovieChanges(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)
	movieSvc := NewMovieService(repos.Movie, repos.Genre, repos.Actor, &fakeNotifier{})

	genre := createGenre(t, repos, "动作", "action", time.Now())
	movie := createMovie(t, repos, "Die Hard", "die-hard", "https://cdn.example.com/old.jpg", genre)

	collections, err := svc.GetCollections()
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "https://cdn.example.com/old.jpg", collections[0].Image)

	// 改电影大海报：缓存立即失效，合集封面跟着变
	_, err = movieSvc.Update(movie.ID, &model.MovieDto{
		Title:     "Die Hard",
		Slug:      "die-hard",
		BigPoster: "https://cdn.example.com/new.jpg",
		GenreIDs:  []int{genre.ID},
	})
	require.NoError(t, err)

	collections, err = svc.GetCollections()
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "https://cdn.example.com/new.jpg", collections[0].Image)

	// 删掉分类下唯一的电影：合集也跟着消失
	_, err = movieSvc.Delete(movie.ID)
	require.NoError(t, err)

	collections, err = svc.GetCollections()
	require.NoError(t, err)
	assert.Empty(t, collections)
}

func TestGenreService_AdminCrud(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGenreService(repos.Genre, repos.Movie)

	id, err := svc.Create()
	require.NoError(t, err)
	require.Greater(t, id, 0)

	genre, err := svc.Update(id, &model.GenreDto{
		Name:        "惊悚",
		Slug:        "thriller",
		Description: "毛骨悚然",
		Icon:        "knife",
	})
	require.NoError(t, err)
	assert.Equal(t, "惊悚", genre.Name)

	got, err := svc.ByID(id)
	require.NoError(t, err)
	assert.Equal(t, "thriller", got.Slug)

	deleted, err := svc.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, "惊悚", deleted.Name)

	_, err = svc.ByID(id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// keys 取 map 的全部键
func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
