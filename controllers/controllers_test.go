package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pollsite/config"
	"pollsite/models"
	"pollsite/routes"
)

// setupRouter wires the handlers to a fresh in-memory database. Voting is
// left open by default; tests covering the auth-gated variant flip
// config.VoteRequiresAuth and rebuild the router themselves.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named shared-cache memory DB keeps every pooled connection on the
	// same database; a single connection serializes sqlite writes.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.Choice{}, &models.Comment{}))

	config.DB = db
	config.SessionSecret = []byte("test-secret")
	config.VoteRequiresAuth = false

	return routes.SetupRouter()
}

func createUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{Username: username, Email: username + "@example.com", Password: string(hashed)}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createQuestion(t *testing.T, text string, pubDate time.Time) *models.Question {
	t.Helper()
	question := &models.Question{QuestionText: text, PubDate: pubDate}
	require.NoError(t, config.DB.Create(question).Error)
	return question
}

func createChoice(t *testing.T, questionID uint, text string, votes uint) *models.Choice {
	t.Helper()
	choice := &models.Choice{QuestionID: questionID, ChoiceText: text, Votes: votes}
	require.NoError(t, config.DB.Create(choice).Error)
	return choice
}

// login runs the real login flow and returns the session cookie.
func login(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := postForm(router, "/auth", url.Values{
		"login":    {"1"},
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie issued on login")
	return nil
}

func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
