package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/joel3500/Forum-de-Discussion-ENT/server/middlewares"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
)

func (s *Server) index(c *gin.Context) {
	var topics []model.Topic
	if err := s.DB.Order("created_at desc").Find(&topics).Error; err != nil {
		Log.Error("fail to list topics: ", err)
	}
	s.render(c, "forum_de_discussion.html", gin.H{"sujets": topics})
}

func (s *Server) viewTopic(c *gin.Context) {
	var topic model.Topic
	if err := s.DB.Where("id = ?", c.Param("id")).First(&topic).Error; err != nil {
		flash(c, "Sujet introuvable.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// one query, oldest first; the forest assembly then needs no
	// per-level sorting
	var rows []*model.Comment
	if err := s.DB.Where("topic_id = ?", topic.Id).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		Log.Error("fail to load comments: ", err)
	}

	s.render(c, "sujet.html", gin.H{
		"sujet": topic,
		"roots": model.CommentForest(rows),
	})
}

func (s *Server) createTopic(c *gin.Context) {
	account := middlewares.CurrentAccount(c)
	if account == nil {
		flash(c, "Connecte-toi pour créer un sujet.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := strings.TrimSpace(c.PostForm("nom"))
	if name == "" {
		name = account.Name
	}
	title := strings.TrimSpace(c.PostForm("titre"))
	body := strings.TrimSpace(c.PostForm("contenu"))
	if title == "" || body == "" {
		flash(c, "Remplis les 3 champs : nom, titre, énoncé.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	topic := model.Topic{
		Id:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		AccountID: &account.Id,
		Name:      name,
		Title:     title,
		Body:      body,
	}
	if err := s.DB.Create(&topic).Error; err != nil {
		Log.Error("fail to create topic: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	flash(c, "Sujet créé !")
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) showEditTopic(c *gin.Context) {
	topic, ok := s.loadOwnedTopic(c)
	if !ok {
		return
	}
	s.render(c, "edit_topic.html", gin.H{"sujet": topic})
}

func (s *Server) editTopic(c *gin.Context) {
	topic, ok := s.loadOwnedTopic(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(c.PostForm("titre"))
	body := strings.TrimSpace(c.PostForm("contenu"))
	if title == "" || body == "" {
		flash(c, "Titre et énoncé sont requis.")
		c.Redirect(http.StatusFound, "/edit_topic/"+topic.Id)
		return
	}

	topic.Title = title
	topic.Body = body
	if err := s.DB.Save(topic).Error; err != nil {
		Log.Error("fail to update topic: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/sujet/"+topic.Id)
		return
	}

	flash(c, "Sujet modifié.")
	c.Redirect(http.StatusFound, "/sujet/"+topic.Id)
}

func (s *Server) deleteTopic(c *gin.Context) {
	topic, ok := s.loadOwnedTopic(c)
	if !ok {
		return
	}

	// comments go with the topic through the FK cascade
	if err := s.DB.Delete(&model.Topic{}, "id = ?", topic.Id).Error; err != nil {
		Log.Error("fail to delete topic: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/sujet/"+topic.Id)
		return
	}

	flash(c, "Sujet supprimé.")
	c.Redirect(http.StatusFound, "/")
}

// loadOwnedTopic resolves :id and enforces the ownership predicate,
// flashing and redirecting on any failure.
func (s *Server) loadOwnedTopic(c *gin.Context) (*model.Topic, bool) {
	var topic model.Topic
	if err := s.DB.Where("id = ?", c.Param("id")).First(&topic).Error; err != nil {
		flash(c, "Sujet introuvable.")
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}
	if !isOwnerOrAdmin(middlewares.CurrentAccount(c), topic.OwnerID()) {
		flash(c, "Tu n'as pas les droits pour modifier ce sujet.")
		c.Redirect(http.StatusFound, "/sujet/"+topic.Id)
		return nil, false
	}
	return &topic, true
}
