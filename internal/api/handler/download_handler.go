package handler

import (
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 制品大小上限 2GB
const maxArtifactSize = int64(2 << 30)

type DownloadHandler struct {
	downloadService *service.DownloadService
}

func NewDownloadHandler(downloadService *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadService: downloadService}
}

// List GET /api/downloads?type=
func (h *DownloadHandler) List(c *gin.Context) {
	downloads, err := h.downloadService.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		logger.Error("List downloads failed", zap.Error(err))
		response.InternalError(c, "获取下载列表失败")
		return
	}
	response.OK(c, "获取下载列表成功", downloads)
}

// Get GET /api/downloads/:id
func (h *DownloadHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的资源ID")
		return
	}

	download, err := h.downloadService.Get(c.Request.Context(), id)
	if err != nil {
		handleDownloadError(c, err)
		return
	}
	response.OK(c, "获取资源详情成功", download)
}

// Create POST /api/downloads（管理员）
func (h *DownloadHandler) Create(c *gin.Context) {
	var req dto.DownloadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	download, err := h.downloadService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Create download failed", zap.Error(err))
		response.InternalError(c, "创建资源失败")
		return
	}
	response.Created(c, "创建资源成功", download)
}

// Update PUT /api/downloads/:id（管理员）
func (h *DownloadHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的资源ID")
		return
	}

	var req dto.DownloadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	download, err := h.downloadService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleDownloadError(c, err)
		return
	}
	response.OK(c, "更新资源成功", download)
}

// Delete DELETE /api/downloads/:id（管理员）
func (h *DownloadHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的资源ID")
		return
	}

	if err := h.downloadService.Delete(c.Request.Context(), id); err != nil {
		handleDownloadError(c, err)
		return
	}
	response.OK(c, "删除资源成功", nil)
}

// Increment POST /api/downloads/:id/increment（公开）
func (h *DownloadHandler) Increment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的资源ID")
		return
	}

	data, err := h.downloadService.Increment(c.Request.Context(), id)
	if err != nil {
		handleDownloadError(c, err)
		return
	}
	response.OK(c, "下载计数已更新", data)
}

// UploadArtifact POST /api/downloads/:id/artifact（管理员，multipart/form-data）
func (h *DownloadHandler) UploadArtifact(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的资源ID")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "请上传制品文件")
		return
	}
	if file.Size <= 0 || file.Size > maxArtifactSize {
		response.BadRequest(c, "文件大小无效（不能为空，最大 2GB）")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer f.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := h.downloadService.UploadArtifact(c.Request.Context(), id, f, file.Size, file.Filename, contentType)
	if err != nil {
		if errors.Is(err, service.ErrArtifactStorageOff) {
			response.ServiceUnavailable(c, "制品存储未启用")
			return
		}
		handleDownloadError(c, err)
		return
	}
	response.OK(c, "制品上传成功", data)
}

func handleDownloadError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrDownloadNotFound) {
		response.NotFound(c, "下载资源不存在")
		return
	}
	logger.Error("Download operation failed", zap.Error(err))
	response.InternalError(c, "下载资源操作失败")
}
