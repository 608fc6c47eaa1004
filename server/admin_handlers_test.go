package server

import (
	"testing"

	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/joel3500/Forum-de-Discussion-ENT/news"
	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, e *testEnv) {
	t.Helper()
	require.NoError(t, SeedAdmin(e.db))
	body := e.login(t, defaultAdminEmail, defaultAdminPassword)
	require.Contains(t, body, "Connecté:")
}

func TestAdminHomeRequiresAdmin(t *testing.T) {
	e := newTestEnv(t)

	body := e.get(t, "/admin")
	require.Contains(t, body, "Accès admin requis.")

	e.seedAccount(t, "Alice", "a@b.com", "password1", model.AdminNo)
	e.login(t, "a@b.com", "password1")
	body = e.get(t, "/admin")
	require.Contains(t, body, "Accès admin requis.")
}

func TestAdminDeletesAnyContent(t *testing.T) {
	e := newTestEnv(t)
	alice := e.seedAccount(t, "Alice", "a@b.com", "password1", model.AdminNo)
	topic := e.seedTopic(t, alice, "Sujet d'Alice")
	c := e.seedComment(t, topic, alice, nil, "commentaire d'Alice")
	e.seedComment(t, topic, alice, c, "réponse")

	loginAdmin(t, e)

	body := e.post(t, "/admin/delete_comment/"+c.Id, nil)
	require.Contains(t, body, "Commentaire supprimé (admin).")
	require.Equal(t, int64(0), e.countComments(t, topic.Id))

	body = e.post(t, "/admin/delete_topic/"+topic.Id, nil)
	require.Contains(t, body, "Sujet supprimé (admin).")
	var n int64
	require.NoError(t, e.db.Model(&model.Topic{}).Count(&n).Error)
	require.Equal(t, int64(0), n)
}

func TestAdminRefreshClearsCacheAndDemoRegenerates(t *testing.T) {
	e := newTestEnv(t)

	// populate the cache through a normal read
	e.get(t, "/actualites")
	var n int64
	require.NoError(t, e.db.Model(&model.NewsCache{}).Count(&n).Error)
	require.Equal(t, int64(1), n)

	loginAdmin(t, e)
	body := e.post(t, "/admin/refresh_actualites", nil)
	require.Contains(t, body, "Cache actualités supprimé.")
	require.NoError(t, e.db.Model(&model.NewsCache{}).Count(&n).Error)
	require.Equal(t, int64(0), n)

	// without a credential the next read serves and caches the fixed
	// two-item demo payload
	body = e.get(t, "/actualites")
	require.Contains(t, body, news.DemoModel)
	require.Contains(t, body, "(DEMO) Forum Startup Saguenay")
	require.Contains(t, body, "(DEMO) Conférence PME &amp; Investisseurs")
	require.NoError(t, e.db.Model(&model.NewsCache{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}
