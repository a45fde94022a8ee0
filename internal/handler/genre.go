package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// ListGenres 分类列表，支持 searchTerm 搜索
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Services.Genre.GetAll(c.Query("searchTerm"))
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, genres)
}

// GenreBySlug 分类详情
func (h *Handler) GenreBySlug(c *gin.Context) {
	genre, err := h.Services.Genre.BySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, "分类不存在")
		return
	}
	utils.Success(c, genre)
}

// GenreCollections 分类合集
func (h *Handler) GenreCollections(c *gin.Context) {
	collections, err := h.Services.Genre.GetCollections()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, collections)
}

// ==================== 后台管理 ====================

// GetGenre 根据 ID 获取分类
func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	genre, err := h.Services.Genre.ByID(id)
	if err != nil {
		handleServiceError(c, err, "分类不存在")
		return
	}
	utils.Success(c, genre)
}

// CreateGenre 创建空白分类，返回新 ID
func (h *Handler) CreateGenre(c *gin.Context) {
	id, err := h.Services.Genre.Create()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, id)
}

// UpdateGenre 更新分类
func (h *Handler) UpdateGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dto model.GenreDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	genre, err := h.Services.Genre.Update(id, &dto)
	if err != nil {
		handleServiceError(c, err, "分类不存在")
		return
	}
	utils.Success(c, genre)
}

// DeleteGenre 删除分类
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	genre, err := h.Services.Genre.Delete(id)
	if err != nil {
		handleServiceError(c, err, "分类不存在")
		return
	}
	utils.Success(c, genre)
}
