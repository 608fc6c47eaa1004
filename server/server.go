// Package server wires the forum's HTTP surface: session-backed
// authentication, topic and comment management, the daily news page
// and the admin screens. Every domain failure resolves into a flash
// message plus a redirect; handlers never answer 5xx for business
// errors.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joel3500/Forum-de-Discussion-ENT/news"
	"github.com/joel3500/Forum-de-Discussion-ENT/server/middlewares"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/token"
	"gorm.io/gorm"
)

// Server holds the collaborators every handler needs.
type Server struct {
	DB     *gorm.DB
	News   *news.Manager
	Tokens *token.Signer
	ImgDir string
}

func New(db *gorm.DB, newsManager *news.Manager, tokens *token.Signer, imgDir string) *Server {
	return &Server{DB: db, News: newsManager, Tokens: tokens, ImgDir: imgDir}
}

// Router assembles the gin engine: middleware stack, template glob,
// static files and every route of the public surface.
func (s *Server) Router(secretKey string) *gin.Engine {
	return s.router(secretKey, "templates/*.html")
}

func (s *Server) router(secretKey, templateGlob string) *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	store := cookie.NewStore([]byte(secretKey))
	router.Use(sessions.Sessions("forum_session", store))
	router.Use(middlewares.SessionUser(s.DB))

	router.LoadHTMLGlob(templateGlob)
	router.Static("/static", "./static")

	// public pages
	router.GET("/", s.index)
	router.GET("/sujet/:id", s.viewTopic)
	router.GET("/actualites", s.showNews)

	// auth
	router.GET("/register", s.showRegister)
	router.POST("/register", s.register)
	router.GET("/login", s.showLogin)
	router.POST("/login", s.login)
	router.GET("/logout", s.logout)

	// topics
	router.POST("/nouveau_sujet", s.createTopic)
	router.GET("/edit_topic/:id", s.showEditTopic)
	router.POST("/edit_topic/:id", s.editTopic)
	router.POST("/delete_topic/:id", s.deleteTopic)

	// comments
	router.POST("/commenter/:topic_id", s.createComment)
	router.POST("/repondre/:parent_id", s.replyComment)
	router.POST("/edit_comment/:id", s.editComment)
	router.POST("/delete_comment/:id", s.deleteComment)

	// admin
	router.GET("/admin", s.adminHome)
	router.POST("/admin/delete_topic/:id", s.adminDeleteTopic)
	router.POST("/admin/delete_comment/:id", s.adminDeleteComment)
	router.POST("/admin/refresh_actualites", s.adminRefreshNews)

	// password reset
	router.GET("/reset_password", s.showResetRequest)
	router.POST("/reset_password", s.resetRequest)
	router.GET("/reset_password/:token", s.showResetForm)
	router.POST("/reset_password/:token", s.resetSubmit)

	return router
}
