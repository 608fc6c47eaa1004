package server

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/joel3500/Forum-de-Discussion-ENT/news"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/dotenv"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/token"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	gin.SetMode(gin.TestMode)
	// handler tests must never reach the real completion service or
	// pick up seeded admin overrides from the host environment
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("ADMIN_NAME")
	os.Unsetenv("ADMIN_EMAIL")
	os.Unsetenv("ADMIN_PASSWORD")
	os.Exit(m.Run())
}

type testEnv struct {
	ts     *httptest.Server
	client *http.Client
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := utils.CreateTempDB(t)
	manager, err := news.NewManager(db, news.NewFetcherFromEnv())
	require.NoError(t, err)

	s := New(db, manager, token.NewSigner("test_secret"), t.TempDir())
	router := s.router("test_secret", filepath.Join("..", "templates", "*.html"))

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{ts: ts, client: &http.Client{Jar: jar}, db: db}
}

// newClientEnv shares the server and database of base but starts a
// fresh cookie jar, i.e. a second anonymous browser.
func newClientEnv(t *testing.T, base *testEnv) *testEnv {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{ts: base.ts, client: &http.Client{Jar: jar}, db: base.db}
}

// get follows redirects and returns the final page body.
func (e *testEnv) get(t *testing.T, path string) string {
	t.Helper()
	resp, err := e.client.Get(e.ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// post submits a form, follows the redirect chain and returns the
// final page body.
func (e *testEnv) post(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := e.client.PostForm(e.ts.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (e *testEnv) register(t *testing.T, name, email, password string) string {
	t.Helper()
	return e.post(t, "/register", url.Values{
		"nom":          {name},
		"email":        {email},
		"mot_de_passe": {password},
	})
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	return e.post(t, "/login", url.Values{
		"email":        {email},
		"mot_de_passe": {password},
	})
}

// seedAccount writes an account row directly, bypassing the handlers.
func (e *testEnv) seedAccount(t *testing.T, name, email, password, isAdmin string) *model.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account := &model.Account{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	require.NoError(t, e.db.Create(account).Error)
	return account
}

func (e *testEnv) seedTopic(t *testing.T, owner *model.Account, title string) *model.Topic {
	t.Helper()
	topic := &model.Topic{
		Id:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Name:      owner.Name,
		Title:     title,
		Body:      "énoncé de " + title,
	}
	topic.AccountID = &owner.Id
	require.NoError(t, e.db.Create(topic).Error)
	return topic
}

func (e *testEnv) seedComment(t *testing.T, topic *model.Topic, owner *model.Account, parent *model.Comment, body string) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		Id:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		TopicID:   topic.Id,
		Name:      owner.Name,
		Body:      body,
	}
	comment.AccountID = &owner.Id
	if parent != nil {
		comment.ParentID = &parent.Id
	}
	require.NoError(t, e.db.Create(comment).Error)
	return comment
}

func (e *testEnv) countComments(t *testing.T, topicID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Comment{}).Where("topic_id = ?", topicID).Count(&n).Error)
	return n
}

func (e *testEnv) commentExists(t *testing.T, id string) bool {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Comment{}).Where("id = ?", id).Count(&n).Error)
	return n == 1
}
