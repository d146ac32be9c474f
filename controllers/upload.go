package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"brandm-backend/media"
	"brandm-backend/utils"
)

const (
	maxUploadSize   = 5 << 20
	maxUploadImages = 5
	uploadTimeout   = 30 * time.Second
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// UploadController handles product image uploads (Admin only)
type UploadController struct {
	uploader media.Uploader
}

// NewUploadController creates a new UploadController
func NewUploadController(uploader media.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadProductImage uploads a single image from the "image" form field
func (uc *UploadController) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	if !uc.available(w) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "File size too large. Maximum size is 5MB.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, ok := uc.readImage(w, file, header)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	result, err := uc.uploader.UploadImage(ctx, bytes.NewReader(data))
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    result,
		"message": "Image uploaded successfully",
	})
}

// UploadProductImages uploads up to five images from the "images" form field
func (uc *UploadController) UploadProductImages(w http.ResponseWriter, r *http.Request) {
	if !uc.available(w) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadImages*maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadImages * maxUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "File size too large. Maximum size is 5MB.")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	if len(files) > maxUploadImages {
		utils.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Too many files. Maximum is %d images.", maxUploadImages))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(len(files))*uploadTimeout)
	defer cancel()

	results := make([]*media.UploadResult, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "No files uploaded")
			return
		}
		data, ok := uc.readImage(w, file, header)
		file.Close()
		if !ok {
			return
		}

		result, err := uc.uploader.UploadImage(ctx, bytes.NewReader(data))
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to upload images")
			return
		}
		results = append(results, result)
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    results,
		"message": fmt.Sprintf("%d images uploaded successfully", len(results)),
	})
}

// DeleteImage removes an uploaded image by its public id
func (uc *UploadController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if !uc.available(w) {
		return
	}
	publicID := mux.Vars(r)["publicId"]
	if publicID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid public ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	if err := uc.uploader.DeleteImage(ctx, publicID); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Image deleted successfully",
	})
}

// available reports whether an uploader is configured, writing 503 if not.
func (uc *UploadController) available(w http.ResponseWriter) bool {
	if uc.uploader == nil {
		utils.WriteError(w, http.StatusServiceUnavailable, "Image uploads are not configured")
		return false
	}
	return true
}

// readImage buffers and validates one uploaded file. On failure it writes the
// 400 response and reports false.
func (uc *UploadController) readImage(w http.ResponseWriter, file multipart.File, header *multipart.FileHeader) ([]byte, bool) {
	if header.Size > maxUploadSize {
		utils.WriteError(w, http.StatusBadRequest, "File size too large. Maximum size is 5MB.")
		return nil, false
	}

	contentType := header.Header.Get("Content-Type")
	allowed := false
	for _, t := range allowedImageTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed types: "+strings.Join(allowedImageTypes, ", "))
		return nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, false
	}
	return data, true
}
