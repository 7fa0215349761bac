package http

import (
	"net/http"
	"strings"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 50 << 20

type FileHandler struct {
	fileUseCase usecase.FileUseCase
}

func NewFileHandler(fileUseCase usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

// FileLinkRequest registers a file hosted elsewhere.
type FileLinkRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	FileType    string `json:"file_type"`
	URL         string `json:"url" binding:"required,url"`
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size" binding:"gte=0"`
}

type DownloadResponse struct {
	ID            string `json:"id"`
	DownloadCount int64  `json:"download_count"`
}

// List godoc
// @Summary      List files
// @Tags         files
// @Produce      json
// @Success      200  {array}   entity.File
// @Failure      500  {object}  ErrorResponse
// @Router       /files [get]
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileUseCase.List()
	if err != nil {
		respondError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusOK, files)
}

// Create godoc
// @Summary      Add a file
// @Description  Upload a file as multipart/form-data, or register an external link as JSON
// @Tags         files
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file        formData file   false "File body"
// @Param        title       formData string false "Title, defaults to the file name"
// @Param        description formData string false "Description"
// @Param        request     body     FileLinkRequest false "External file"
// @Success      201  {object}  entity.File
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /files [post]
func (h *FileHandler) Create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.upload(c)
		return
	}

	var req FileLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.fileUseCase.CreateLink(&entity.File{
		Title:       req.Title,
		Description: req.Description,
		FileType:    req.FileType,
		URL:         req.URL,
		MimeType:    req.MimeType,
		Size:        req.Size,
	})
	if err != nil {
		respondError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusCreated, file)
}

func (h *FileHandler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	file, err := h.fileUseCase.Upload(c.Request.Context(), usecase.Upload{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		respondError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusCreated, file)
}

// Delete godoc
// @Summary      Delete a file
// @Tags         files
// @Produce      json
// @Param        id path string true "File ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.fileUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "File deleted successfully"})
}

// IncrementDownload godoc
// @Summary      Count a download
// @Tags         files
// @Produce      json
// @Param        id path string true "File ID"
// @Success      200  {object}  DownloadResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /files/{id}/download [patch]
func (h *FileHandler) IncrementDownload(c *gin.Context) {
	id := c.Param("id")
	count, err := h.fileUseCase.IncrementDownload(id)
	if err != nil {
		respondError(c, err, "File not found")
		return
	}

	c.JSON(http.StatusOK, DownloadResponse{ID: id, DownloadCount: count})
}
