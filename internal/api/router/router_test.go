package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"fanhub-go/internal/api/handler"
	"fanhub-go/internal/config"
	"fanhub-go/internal/service"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/memory"
	"fanhub-go/pkg/logger"
	"fanhub-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminToken = "test-admin-token"
	testConfigYAML = `app:
  name: fanhub-test
  mode: test
auth:
  admin_token: test-admin-token
`
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "fanhub-config")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o600); err != nil {
		panic(err)
	}
	if _, err := config.Load(path); err != nil {
		panic(err)
	}
	if err := logger.Init("warn", "console", "stdout", ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, storage.Storage) {
	t.Helper()

	store := memory.New()
	r := gin.New()

	videoService := service.NewVideoService(store)
	Setup(r,
		handler.NewAuthHandler(service.NewAuthService(store)),
		handler.NewVideoHandler(videoService, service.NewSearchService(store)),
		handler.NewDownloadHandler(service.NewDownloadService(store)),
		handler.NewNotificationHandler(service.NewNotificationService(store)),
		handler.NewSubscriberHandler(service.NewSubscriberService(store)),
		handler.NewSettingsHandler(service.NewSettingsService(store)),
		handler.NewCommentHandler(service.NewCommentService(store)),
		handler.NewLinkHandler(service.NewLinkService()),
		handler.NewQRCodeHandler(service.NewQRCodeService(store)),
		handler.NewYouTubeHandler(service.NewYouTubeService(store)),
	)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	return envelope.Data
}

func TestLoginEndpoint(t *testing.T) {
	r, store := newTestServer(t)

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(context.Background(),&model.User{Username: "admin", Password: hash, IsAdmin: true}))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, testAdminToken, data["token"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRouteAuth(t *testing.T) {
	r, _ := newTestServer(t)

	body := gin.H{"youtubeId": "abc", "title": "测试视频"}

	w := doJSON(t, r, http.MethodPost, "/api/videos", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/videos", "wrong-token", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/videos", testAdminToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestVideoLifecycle(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/videos/featured", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/videos", testAdminToken, gin.H{"youtubeId": "v1", "title": "速通教程", "category": "tutorial"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	id := int64(created["id"].(float64))

	w = doJSON(t, r, http.MethodGet, "/api/videos", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/videos/"+itoa(id)+"/feature", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/videos/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	featured := decodeData(t, w)
	assert.Equal(t, "速通教程", featured["title"])

	w = doJSON(t, r, http.MethodDelete, "/api/videos/"+itoa(id), testAdminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/videos/"+itoa(id), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentVisibilityByRole(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/videos", testAdminToken, gin.H{"youtubeId": "v1", "title": "带评论的视频"})
	require.Equal(t, http.StatusCreated, w.Code)
	video := decodeData(t, w)
	videoID := itoa(int64(video["id"].(float64)))

	var commentIDs []int64
	for _, author := range []string{"粉丝甲", "粉丝乙"} {
		w = doJSON(t, r, http.MethodPost, "/api/videos/"+videoID+"/comments", "", gin.H{"author": author, "content": "太棒了"})
		require.Equal(t, http.StatusCreated, w.Code)
		comment := decodeData(t, w)
		commentIDs = append(commentIDs, int64(comment["id"].(float64)))
	}

	w = doJSON(t, r, http.MethodPost, "/api/comments/"+itoa(commentIDs[0])+"/approve", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/videos/"+videoID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = doJSON(t, r, http.MethodGet, "/api/videos/"+videoID+"/comments", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestSubscribeConflict(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/subscribers", "", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/subscribers", "", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/subscribers", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLiveStreamEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/livestream", testAdminToken, gin.H{"isLiveStreaming": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/livestream", testAdminToken, gin.H{"isLiveStreaming": true, "liveStreamId": "live123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/livestream", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeData(t, w)
	assert.Equal(t, true, status["isLiveStreaming"])
	assert.Equal(t, "live123", status["liveStreamId"])
}

func TestConvertLinkEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/convert-link", "", gin.H{"url": "https://1drv.ms/u/s!AbCdEf"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "https://1drv.ms/u/s!AbCdEf?download=1", data["convertedUrl"])
	assert.Equal(t, true, data["isConverted"])
}

func TestDownloadIncrementEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/downloads", testAdminToken, gin.H{
		"title":       "Pixel Dungeon",
		"type":        "game",
		"version":     "1.2.0",
		"downloadUrl": "/downloads/pixel-dungeon.zip",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	download := decodeData(t, w)
	id := itoa(int64(download["id"].(float64)))

	w = doJSON(t, r, http.MethodPost, "/api/downloads/"+id+"/increment", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["downloadCount"])
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var envelope struct {
		Success bool          `json:"success"`
		Data    []interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	return envelope.Data
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
