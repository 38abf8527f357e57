package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"portfolio.site/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublicPrefix is the URL path the media root is served under.
const PublicPrefix = "/media/"

var (
	ImageExtensions    = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".ico"}
	DocumentExtensions = []string{".pdf", ".doc", ".docx"}
)

var ErrFileType = errors.New("file type is not allowed")

// Store saves uploaded files below a root directory under random names.
// Stored references are slash-separated paths relative to the root, e.g. "projects/<uuid>.png".
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// SaveFormFile stores the file posted in field under dir. It returns "" and no
// error when the field is empty.
func (s *Store) SaveFormFile(c *fiber.Ctx, field, dir string, allowed []string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return "", nil
	}
	return s.Save(c, fh, dir, allowed)
}

func (s *Store) Save(c *fiber.Ctx, fh *multipart.FileHeader, dir string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt(ext, allowed) {
		return "", fmt.Errorf("%w: %s", ErrFileType, ext)
	}
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		return "", err
	}
	rel := path.Join(dir, uuid.NewString()+ext)
	if err := c.SaveFile(fh, filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		configslog.Log.Error("Upload could not be saved", zap.String("file", fh.Filename), zap.Error(err))
		return "", err
	}
	return rel, nil
}

// Remove deletes a stored file. Missing files and references outside the root are ignored.
func (s *Store) Remove(rel string) {
	if rel == "" {
		return
	}
	clean := path.Clean("/" + rel)[1:]
	if clean == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean))); err != nil && !os.IsNotExist(err) {
		configslog.Log.Warn("Upload could not be removed", zap.String("path", rel), zap.Error(err))
	}
}

// URL maps a stored reference to its public URL. Absolute URLs pass through.
func URL(rel string) string {
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") || strings.HasPrefix(rel, "/") {
		return rel
	}
	return PublicPrefix + rel
}

func allowedExt(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
