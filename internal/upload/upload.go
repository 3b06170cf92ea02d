package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"moviebooks/internal/pkg/slug"
)

const (
	// MaxFileSize caps uploads at 5 MiB.
	MaxFileSize = 5 * 1024 * 1024

	defaultBaseDir = "public/images"
	urlBase        = "/images"
)

// Kind selects the destination directory for an uploaded image.
type Kind int

const (
	KindGeneric Kind = iota
	KindBookCover
	KindMoviePoster
	KindScreenshot
	KindAvatar
)

// dir returns the subdirectory under the images root ("" = root itself).
func (k Kind) dir() string {
	switch k {
	case KindBookCover:
		return "books"
	case KindMoviePoster:
		return "movies"
	case KindScreenshot:
		return "screenshots"
	case KindAvatar:
		return "avatars"
	}
	return ""
}

// tag is the fallback filename prefix when no slug or title is available.
func (k Kind) tag() string {
	switch k {
	case KindBookCover:
		return "book"
	case KindMoviePoster:
		return "movie"
	case KindScreenshot:
		return "screenshot"
	case KindAvatar:
		return "avatar"
	}
	return "file"
}

// KindForField maps a multipart field name to its destination kind.
// Unrecognized fields land in the generic images directory.
func KindForField(field string) Kind {
	switch field {
	case "bookCover", "coverImage":
		return KindBookCover
	case "moviePoster", "posterImage":
		return KindMoviePoster
	case "screenshot", "screenshotImage":
		return KindScreenshot
	case "avatar":
		return KindAvatar
	}
	return KindGeneric
}

// Service writes uploaded images to local disk and hands back the
// server-relative URL path stored on entity records.
type Service struct {
	baseDir string
}

func NewService(baseDir string) *Service {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	return &Service{baseDir: baseDir}
}

// Save validates and stores one uploaded image.
//
// baseName is the caller-derived name (explicit slug field, else the
// slugified title); when empty the name falls back to "<tag>-<timestamp>".
// An 8-char unique suffix is always appended so two uploads deriving the
// same slug can never overwrite each other; the slug stays as the
// human-readable part.
func (s *Service) Save(fileHeader *multipart.FileHeader, kind Kind, baseName string) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrInvalidFileType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, kind.dir())
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	base := slug.Make(baseName)
	if base == "" {
		base = fmt.Sprintf("%s-%d", kind.tag(), time.Now().UnixMilli())
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s-%s%s", base, uuid.New().String()[:8], ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if d := kind.dir(); d != "" {
		return urlBase + "/" + d + "/" + filename, nil
	}
	return urlBase + "/" + filename, nil
}

// Remove deletes a previously stored file given its URL path. Used to
// clean up when a multi-record write rolls back after files were written.
func (s *Service) Remove(urlPath string) {
	if !strings.HasPrefix(urlPath, urlBase+"/") {
		return
	}
	rel := strings.TrimPrefix(urlPath, urlBase+"/")
	if rel == "" || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ".img"
}
