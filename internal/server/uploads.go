package server

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	maxUploadBytes = 5 * 1024 * 1024
	maxImageSide   = 8192
)

var allowedImageExts = map[string]struct{}{
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
}

// saveUpload stores the "image" multipart part under the media directory and
// returns its media-relative path. A request without an image part returns
// ("", nil); the image is optional everywhere it is accepted.
func (s *Server) saveUpload(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if fileHeader.Size > maxUploadBytes {
		return "", errors.New("image too large (max 5 MB)")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", errors.New("unsupported image type")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", errors.New("unreadable image")
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return "", errors.New("file is not a valid image")
	}
	if cfg.Width > maxImageSide || cfg.Height > maxImageSide {
		return "", errors.New("image dimensions too large")
	}

	relPath := filepath.Join("posts", uuid.NewString()+ext)
	dest := filepath.Join(s.config.MediaDir, relPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.New("could not store image")
	}
	if err := c.SaveFile(fileHeader, dest); err != nil {
		return "", errors.New("could not store image")
	}

	return filepath.ToSlash(relPath), nil
}

// discardUpload removes a stored upload when the submission it belonged to
// is rejected after the file was already written.
func (s *Server) discardUpload(relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.config.MediaDir, filepath.FromSlash(relPath)))
}
