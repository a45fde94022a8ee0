package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// ListMovies 电影列表，支持 searchTerm 按标题搜索
func (h *Handler) ListMovies(c *gin.Context) {
	searchTerm := c.Query("searchTerm")

	if searchTerm != "" {
		if movies, ok := h.movieSearchCache.Get(searchTerm); ok {
			utils.Success(c, movies)
			return
		}
	}

	movies, err := h.Services.Movie.GetAll(searchTerm)
	if err != nil {
		handleServiceError(c, err, "")
		return
	}

	if searchTerm != "" {
		h.movieSearchCache.Set(searchTerm, movies)
	}
	utils.Success(c, movies)
}

// MovieBySlug 电影详情
func (h *Handler) MovieBySlug(c *gin.Context) {
	movie, err := h.Services.Movie.BySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// MoviesByActor 某演员参演的电影列表
func (h *Handler) MoviesByActor(c *gin.Context) {
	actorID, ok := parseIDParam(c, "actorId")
	if !ok {
		return
	}
	movies, err := h.Services.Movie.ByActor(actorID)
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// MoviesByGenres 分类集合下的电影列表
func (h *Handler) MoviesByGenres(c *gin.Context) {
	var dto model.ByGenresDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	movies, err := h.Services.Movie.ByGenres(dto.GenreIDs)
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// MostPopularMovies 热门电影
func (h *Handler) MostPopularMovies(c *gin.Context) {
	movies, err := h.Services.Movie.GetMostPopular()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, movies)
}

// UpdateCountOpened 浏览量加一
func (h *Handler) UpdateCountOpened(c *gin.Context) {
	var dto model.SlugDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	movie, err := h.Services.Movie.UpdateCountOpened(dto.Slug)
	if err != nil {
		handleServiceError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// ==================== 后台管理 ====================

// GetMovie 根据 ID 获取电影
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movie, err := h.Services.Movie.ByID(id)
	if err != nil {
		handleServiceError(c, err, "电影不存在")
		return
	}
	utils.Success(c, movie)
}

// CreateMovie 创建空白电影，返回新 ID
func (h *Handler) CreateMovie(c *gin.Context) {
	id, err := h.Services.Movie.Create()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, id)
}

// UpdateMovie 更新电影
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dto model.MovieDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	movie, err := h.Services.Movie.Update(id, &dto)
	if err != nil {
		handleServiceError(c, err, "电影、分类或演员不存在")
		return
	}
	// 标题可能已变化，搜索缓存整体作废
	h.movieSearchCache.Clear()
	utils.Success(c, movie)
}

// DeleteMovie 删除电影
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movie, err := h.Services.Movie.Delete(id)
	if err != nil {
		handleServiceError(c, err, "电影不存在")
		return
	}
	h.movieSearchCache.Clear()
	utils.Success(c, movie)
}
