package handler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/config"
	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
	"github.com/ArthurBosch/online-cinema-backend/internal/service"
	"github.com/ArthurBosch/online-cinema-backend/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Services *service.Services
	Config   *config.Config

	// 电影搜索结果缓存：同一个关键词短时间内只查一次库
	movieSearchCache *utils.SearchCache[[]*model.Movie]
}

// NewHandler 创建处理器
func NewHandler(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		Services:         services,
		Config:           cfg,
		movieSearchCache: utils.NewSearchCache[[]*model.Movie](500, time.Minute),
	}
}

// handleServiceError 将服务层错误映射为 HTTP 响应
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, notFoundMsg)
	case errors.Is(err, repository.ErrEmailTaken):
		utils.Conflict(c, "邮箱已被占用")
	default:
		log.Printf("[API] 请求处理失败: %v", err)
		utils.InternalServerError(c, "")
	}
}

// parseIDParam 解析路径中的整数 ID，非法时返回 false 并已写出 400
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
