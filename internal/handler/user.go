package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/middleware"
	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// GetProfile 当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Services.User.ByID(middleware.GetUserID(c))
	if err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, user)
}

// UpdateProfile 更新当前用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var dto model.UpdateUserDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.Services.User.UpdateProfile(middleware.GetUserID(c), &dto); err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, nil)
}

// GetFavourites 当前用户的收藏列表
func (h *Handler) GetFavourites(c *gin.Context) {
	movies, err := h.Services.User.GetFavourites(middleware.GetUserID(c))
	if err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, movies)
}

// ToggleFavourite 收藏/取消收藏
func (h *Handler) ToggleFavourite(c *gin.Context) {
	var dto model.ToggleFavouriteDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.Services.User.ToggleFavourite(middleware.GetUserID(c), dto.MovieID); err != nil {
		handleServiceError(c, err, "用户或电影不存在")
		return
	}
	utils.Success(c, nil)
}

// ==================== 后台管理 ====================

// GetUserCount 用户总数
func (h *Handler) GetUserCount(c *gin.Context) {
	count, err := h.Services.User.GetCount()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, count)
}

// ListUsers 用户列表，支持 searchTerm 按邮箱搜索
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Services.User.GetAll(c.Query("searchTerm"))
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, users)
}

// GetUser 根据 ID 获取用户
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.Services.User.ByID(id)
	if err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, user)
}

// UpdateUser 更新指定用户资料
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dto model.UpdateUserDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.Services.User.UpdateProfile(id, &dto); err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, nil)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.Services.User.Delete(id)
	if err != nil {
		handleServiceError(c, err, "用户不存在")
		return
	}
	utils.Success(c, user)
}
