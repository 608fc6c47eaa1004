package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
)

func (s *Server) adminHome(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var topics []model.Topic
	var comments []model.Comment
	var accounts []model.Account
	if err := s.DB.Order("created_at desc").Find(&topics).Error; err != nil {
		Log.Error("fail to list topics: ", err)
	}
	if err := s.DB.Order("created_at desc").Find(&comments).Error; err != nil {
		Log.Error("fail to list comments: ", err)
	}
	if err := s.DB.Order("created_at desc").Find(&accounts).Error; err != nil {
		Log.Error("fail to list accounts: ", err)
	}

	s.render(c, "admin.html", gin.H{
		"sujets":   topics,
		"comments": comments,
		"users":    accounts,
	})
}

func (s *Server) adminDeleteTopic(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	res := s.DB.Delete(&model.Topic{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		Log.Error("fail to delete topic: ", res.Error)
	} else if res.RowsAffected > 0 {
		flash(c, "Sujet supprimé (admin).")
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) adminDeleteComment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	res := s.DB.Delete(&model.Comment{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		Log.Error("fail to delete comment: ", res.Error)
	} else if res.RowsAffected > 0 {
		flash(c, "Commentaire supprimé (admin).")
	}
	c.Redirect(http.StatusFound, "/admin")
}
