package admin

import (
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var uploadErrorRules = []mappedHandlerError{
	{target: service.ErrUploadInvalidType, code: response.CodeBadRequest, msg: "unsupported image type"},
	{target: service.ErrUploadTooLarge, code: response.CodeBadRequest, msg: "image file too large"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "too many files"},
}

// UploadImages stores product images from a multipart form and
// returns their public paths. A request with no files succeeds with
// an empty list.
func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	files := form.File["images"]

	paths, err := h.UploadService.SaveFiles(files)
	if err != nil {
		respondWithMappedError(c, err, uploadErrorRules, response.CodeInternal, "failed to save images")
		return
	}
	response.Success(c, gin.H{"image_paths": paths})
}
