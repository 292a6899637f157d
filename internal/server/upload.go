package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/fetch"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/imaging"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) verifyImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "No image file provided", "Upload the image in the multipart field \"image\"", "image")
		return
	}
	if file.Filename == "" {
		badRequest(c, "No file selected", "The uploaded file has no name", "image")
		return
	}
	if s.cfg.Server.MaxUploadBytes > 0 && file.Size > s.cfg.Server.MaxUploadBytes {
		badRequest(c, "File too large", fmt.Sprintf("maximum upload size is %d bytes", s.cfg.Server.MaxUploadBytes), "image")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !s.allowedExtension(ext) {
		badRequest(c, "Invalid file type", "Allowed types: "+strings.Join(s.cfg.Upload.AllowedExtensions, ", "), "image")
		return
	}

	path, err := s.uploadPath(ext)
	if err != nil {
		internalError(c, err)
		return
	}
	defer removeUpload(path)

	if err := c.SaveUploadedFile(file, path); err != nil {
		internalError(c, fmt.Errorf("save upload: %w", err))
		return
	}

	v, err := s.verifier.VerifyImage(c.Request.Context(), path)
	respond(c, v, err, "image")
}

func (s *Server) verifyImageURL(c *gin.Context) {
	var req imageURLRequest
	if !bindJSON(c, &req, "image_url") {
		return
	}
	if !pipeline.ValidURL(strings.TrimSpace(req.ImageURL)) {
		badRequest(c, "Invalid URL", pipeline.ErrInvalidURL.Error(), "image_url")
		return
	}
	if s.downloader == nil {
		internalError(c, fmt.Errorf("image download is not available"))
		return
	}

	ctx := c.Request.Context()
	if d := s.cfg.HTTP.DownloadTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	data, err := s.downloader.Download(ctx, strings.TrimSpace(req.ImageURL), s.cfg.Server.MaxUploadBytes)
	if errors.Is(err, fetch.ErrTooLarge) {
		badRequest(c, "File too large", fmt.Sprintf("maximum image size is %d bytes", s.cfg.Server.MaxUploadBytes), "image_url")
		return
	}
	if err != nil {
		badRequest(c, "Failed to download image", err.Error(), "image_url")
		return
	}
	if !imaging.IsImage(data) {
		badRequest(c, "Invalid file type", pipeline.ErrNotImage.Error(), "image_url")
		return
	}

	path, err := s.saveBytes(data, imaging.Extension(data))
	if path != "" {
		defer removeUpload(path)
	}
	if err != nil {
		internalError(c, err)
		return
	}

	v, err := s.verifier.VerifyImage(c.Request.Context(), path)
	respond(c, v, err, "image_url")
}

func (s *Server) testImage(c *gin.Context) {
	data, err := samplePNG()
	if err != nil {
		internalError(c, err)
		return
	}
	path, err := s.saveBytes(data, "png")
	if path != "" {
		defer removeUpload(path)
	}
	if err != nil {
		internalError(c, err)
		return
	}

	v, err := s.verifier.VerifyImage(c.Request.Context(), path)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Image verification endpoint ready",
		"result":  v,
		"endpoints": gin.H{
			"upload": "POST /verify/image (multipart field 'image')",
			"url":    "POST /verify/image/url (JSON body {\"image_url\": ...})",
		},
		"supported_formats": s.cfg.Upload.AllowedExtensions,
	})
}

func (s *Server) allowedExtension(ext string) bool {
	return ext != "" && slices.Contains(s.cfg.Upload.AllowedExtensions, ext)
}

// uploadPath returns a fresh path in the upload directory
func (s *Server) uploadPath(ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	return filepath.Join(s.cfg.Upload.Dir, uuid.NewString()+"."+ext), nil
}

func (s *Server) saveBytes(data []byte, ext string) (string, error) {
	path, err := s.uploadPath(ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return path, fmt.Errorf("save image: %w", err)
	}
	return path, nil
}

// removeUpload deletes a temporary upload; failures are only logged
func removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not remove upload %s: %v", path, err)
	}
}

func samplePNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode sample image: %w", err)
	}
	return buf.Bytes(), nil
}
