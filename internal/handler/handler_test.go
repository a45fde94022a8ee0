package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArthurBosch/online-cinema-backend/internal/config"
	"github.com/ArthurBosch/online-cinema-backend/internal/handler"
	"github.com/ArthurBosch/online-cinema-backend/internal/middleware"
	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
	"github.com/ArthurBosch/online-cinema-backend/internal/router"
	"github.com/ArthurBosch/online-cinema-backend/internal/service"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

const testSecret = "test-secret"

// noopNotifier 测试用的空通知网关
type noopNotifier struct{}

func (noopNotifier) SendPhoto(photo, caption, chatID string) error               { return nil }
func (noopNotifier) SendMessage(text string, opts *service.MessageOptions) error { return nil }

// newTestServer 组装完整路由 + 内存库
func newTestServer(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))

	utils.InitCache()
	utils.RegisterValidators()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, noopNotifier{})
	cfg := &config.Config{AppSecret: testSecret}

	r := gin.New()
	router.RegisterRoutes(r, handler.NewHandler(services, cfg))
	return r, repos
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func userToken(t *testing.T, id int, admin bool) string {
	t.Helper()
	token, err := middleware.GenerateToken(id, "t@example.com", admin, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestMovieRoutes(t *testing.T) {
	r, repos := newTestServer(t)

	genre := &model.Genre{Name: "动作", Slug: "action"}
	require.NoError(t, repos.Genre.Save(genre))

	admin := userToken(t, 1, true)

	// 未登录不能建电影
	w := doJSON(r, http.MethodPost, "/api/movies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 管理员创建空白电影
	w = doJSON(r, http.MethodPost, "/api/movies", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Data int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Greater(t, created.Data, 0)

	// 填充内容
	dto := model.MovieDto{
		Title:     "Heat",
		Slug:      "heat",
		Poster:    "https://cdn.example.com/p.jpg",
		BigPoster: "https://cdn.example.com/bp.jpg",
		VideoURL:  "https://cdn.example.com/v.mp4",
		GenreIDs:  []int{genre.ID},
	}
	moviePath := fmt.Sprintf("/api/movies/%d", created.Data)
	w = doJSON(r, http.MethodPut, moviePath, admin, dto)
	require.Equal(t, http.StatusOK, w.Code)

	// 非法 slug 被校验拦下
	bad := dto
	bad.Slug = "Not A Slug"
	w = doJSON(r, http.MethodPut, moviePath, admin, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 公开接口按 slug 查详情
	w = doJSON(r, http.MethodGet, "/api/movies/by-slug/heat", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Heat"`)

	w = doJSON(r, http.MethodGet, "/api/movies/by-slug/none", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 浏览量自增
	w = doJSON(r, http.MethodPut, "/api/movies/update-count-opened", "", model.SlugDto{Slug: "heat"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count_opened":1`)
}

func TestMovieSearchCacheFreshness(t *testing.T) {
	r, repos := newTestServer(t)

	movie := &model.Movie{Title: "Seven", Slug: "seven"}
	require.NoError(t, repos.Movie.Save(movie))

	admin := userToken(t, 1, true)

	// 第一次搜索把结果写进缓存
	w := doJSON(r, http.MethodGet, "/api/movies?searchTerm=seven", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Seven"`)

	// 管理员改标题后，搜索结果不能还是旧缓存
	dto := model.MovieDto{
		Title:     "Seven Samurai",
		Slug:      "seven",
		Poster:    "https://cdn.example.com/p.jpg",
		BigPoster: "https://cdn.example.com/bp.jpg",
		VideoURL:  "https://cdn.example.com/v.mp4",
	}
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/movies/%d", movie.ID), admin, dto)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/movies?searchTerm=seven", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Seven Samurai"`)

	// 删除后搜索结果为空
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/movies/%d", movie.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/movies?searchTerm=seven", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Samurai")
}

func TestUserRoutes(t *testing.T) {
	r, repos := newTestServer(t)

	user := &model.User{Email: "u@example.com", PasswordHash: "x"}
	require.NoError(t, repos.User.Save(user))
	movie := &model.Movie{Title: "Alien", Slug: "alien"}
	require.NoError(t, repos.Movie.Save(movie))

	token := userToken(t, user.ID, false)

	// 个人资料
	w := doJSON(r, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u@example.com")
	// 密码哈希不外泄
	assert.NotContains(t, w.Body.String(), "password")

	// 收藏与取消
	w = doJSON(r, http.MethodPut, "/api/users/profile/favourites", token, model.ToggleFavouriteDto{MovieID: movie.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/users/profile/favourites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Alien"`)

	// 普通用户访问管理接口被拒
	w = doJSON(r, http.MethodGet, "/api/users/count", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员可以看总数
	admin := userToken(t, user.ID, true)
	w = doJSON(r, http.MethodGet, "/api/users/count", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":1`)

	// 邮箱冲突映射为 409
	other := &model.User{Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, repos.User.Save(other))
	w = doJSON(r, http.MethodPut, "/api/users/profile", token, model.UpdateUserDto{Email: "other@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
