package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"talentsite_backend/internal/config"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/storage"
	"talentsite_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploadConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload.VideoMaxSize = 100 << 20
	cfg.Upload.BannerMaxSize = 1 << 10 // 1KB, чтобы легко превысить
	return cfg
}

func tempLocalStorage(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)
	return st, dir
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestReceiveStoresFileInKindDir(t *testing.T) {
	st, dir := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	file := makeFileHeader(t, "avatar.png", []byte("png bytes"))
	upload, err := svc.Receive(context.Background(), models.SlotCategory, file)
	require.NoError(t, err)

	assert.Equal(t, models.SlotCategory, upload.Kind)
	assert.Regexp(t, regexp.MustCompile(`^\d+-avatar\.png$`), upload.Filename)
	assert.Equal(t, "categoryImg/"+upload.Filename, upload.Path)

	data, err := os.ReadFile(filepath.Join(dir, "categoryImg", upload.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestReceiveNilFile(t *testing.T) {
	st, _ := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	_, err := svc.Receive(context.Background(), models.SlotCategory, nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrNoFileProvided))
}

func TestReceiveRejectsBadExtension(t *testing.T) {
	st, _ := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	file := makeFileHeader(t, "payload.exe", []byte("MZ"))
	_, err := svc.Receive(context.Background(), models.SlotCategory, file)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrInvalidFile.Code, appErr.Code)
}

func TestReceiveRejectsOversizedFile(t *testing.T) {
	st, _ := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	big := bytes.Repeat([]byte("x"), 2<<10) // больше лимита баннера
	file := makeFileHeader(t, "banner.jpg", big)
	_, err := svc.Receive(context.Background(), models.SlotBanner, file)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrFileTooLarge.Code, appErr.Code)
}

func TestReceiveRejectsUnknownKind(t *testing.T) {
	st, _ := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	file := makeFileHeader(t, "x.png", []byte("x"))
	_, err := svc.Receive(context.Background(), models.SlotKind("mystery"), file)
	assert.Error(t, err)
}

func TestReceiveSanitizesFilename(t *testing.T) {
	st, _ := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	file := makeFileHeader(t, "my photo (1).png", []byte("x"))
	upload, err := svc.Receive(context.Background(), models.SlotCategory, file)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+-my_photo__1_\.png$`), upload.Filename)
}

func TestDiscardRemovesFile(t *testing.T) {
	st, dir := tempLocalStorage(t)
	svc := NewUploadService(st, testUploadConfig())

	file := makeFileHeader(t, "avatar.png", []byte("png bytes"))
	upload, err := svc.Receive(context.Background(), models.SlotCategory, file)
	require.NoError(t, err)

	svc.Discard(context.Background(), upload)

	_, statErr := os.Stat(filepath.Join(dir, "categoryImg", upload.Filename))
	assert.True(t, os.IsNotExist(statErr))
}
