package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// ListActors 演员列表，支持 searchTerm 搜索
func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.Services.Actor.GetAll(c.Query("searchTerm"))
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, actors)
}

// ActorBySlug 演员详情
func (h *Handler) ActorBySlug(c *gin.Context) {
	actor, err := h.Services.Actor.BySlug(c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// ==================== 后台管理 ====================

// GetActor 根据 ID 获取演员
func (h *Handler) GetActor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, err := h.Services.Actor.ByID(id)
	if err != nil {
		handleServiceError(c, err, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// CreateActor 创建空白演员，返回新 ID
func (h *Handler) CreateActor(c *gin.Context) {
	id, err := h.Services.Actor.Create()
	if err != nil {
		handleServiceError(c, err, "")
		return
	}
	utils.Success(c, id)
}

// UpdateActor 更新演员
func (h *Handler) UpdateActor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dto model.ActorDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	actor, err := h.Services.Actor.Update(id, &dto)
	if err != nil {
		handleServiceError(c, err, "演员不存在")
		return
	}
	utils.Success(c, actor)
}

// DeleteActor 删除演员
func (h *Handler) DeleteActor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, err := h.Services.Actor.Delete(id)
	if err != nil {
		handleServiceError(c, err, "演员不存在")
		return
	}
	utils.Success(c, actor)
}
