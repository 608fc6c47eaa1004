package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/joel3500/Forum-de-Discussion-ENT/gallery"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/joel3500/Forum-de-Discussion-ENT/server/middlewares"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
)

// flash queues a user-visible message for the page rendered after the
// next redirect.
func flash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		Log.Error("fail to save session flash: ", err)
	}
}

// takeFlashes drains and returns the queued messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			Log.Error("fail to clear session flashes: ", err)
		}
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

// render draws an HTML template with the ambient page data every
// template expects: the signed-in account, pending flashes and the
// image gallery.
func (s *Server) render(c *gin.Context, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["user"] = middlewares.CurrentAccount(c)
	data["flashes"] = takeFlashes(c)

	listing, err := gallery.List(s.ImgDir)
	if err != nil {
		// an unreadable directory degrades to a page without images
		Log.Warn("fail to list gallery images: ", err)
	}
	data["main_image_url"] = listing.MainURL
	data["gallery_urls"] = listing.GalleryURLs

	c.HTML(http.StatusOK, tmpl, data)
}

// signIn binds the session to the account.
func signIn(c *gin.Context, account *model.Account) {
	session := sessions.Default(c)
	session.Set(middlewares.SessionUserKey, account.Id)
	if err := session.Save(); err != nil {
		Log.Error("fail to save session: ", err)
	}
}

// signOut clears the whole session.
func signOut(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		Log.Error("fail to clear session: ", err)
	}
}

// isOwnerOrAdmin is the single mutation-rights predicate: the caller
// must be signed in and either hold the admin flag or be the recorded
// owner. An orphaned entity (ownerID "") is only mutable by an admin.
func isOwnerOrAdmin(account *model.Account, ownerID string) bool {
	if account == nil {
		return false
	}
	if account.Admin() {
		return true
	}
	return ownerID != "" && account.Id == ownerID
}

// requireAdmin flashes and redirects home for non-admin callers,
// returning false to stop the handler.
func requireAdmin(c *gin.Context) bool {
	account := middlewares.CurrentAccount(c)
	if !account.Admin() {
		flash(c, "Accès admin requis.")
		c.Redirect(http.StatusFound, "/")
		return false
	}
	return true
}
