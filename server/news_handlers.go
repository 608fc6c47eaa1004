package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) showNews(c *gin.Context) {
	digest := s.News.GetDaily(c.Request.Context())
	s.render(c, "actualites.html", gin.H{
		"items": digest.Items,
		"model": digest.Model,
	})
}

// adminRefreshNews drops the cache row; the next visit to the news
// page triggers the regeneration, not this handler.
func (s *Server) adminRefreshNews(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	if err := s.News.Clear(); err != nil {
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	flash(c, "Cache actualités supprimé. La prochaine visite va regénérer la page.")
	c.Redirect(http.StatusFound, "/admin")
}
