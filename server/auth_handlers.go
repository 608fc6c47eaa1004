package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) showRegister(c *gin.Context) {
	s.render(c, "register.html", nil)
}

func (s *Server) register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nom"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("mot_de_passe")

	if name == "" || email == "" || password == "" {
		flash(c, "Tous les champs sont requis.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if !ValidateEmail(email) {
		flash(c, "Email invalide.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if ok, msg := ValidatePassword(password); !ok {
		flash(c, msg)
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var existing model.Account
	if err := s.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		flash(c, "Cet email est déjà utilisé.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		Log.Error("fail to hash password: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	account := model.Account{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      model.AdminNo,
	}
	if err := s.DB.Create(&account).Error; err != nil {
		// unique index race on email lands here too
		Log.Error("fail to create account: ", err)
		flash(c, "Cet email est déjà utilisé.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	signIn(c, &account)
	flash(c, "Bienvenue !")
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) showLogin(c *gin.Context) {
	s.render(c, "login.html", nil)
}

func (s *Server) login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("mot_de_passe")

	var account model.Account
	err := s.DB.Where("email = ?", email).First(&account).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		flash(c, "Identifiants invalides.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	signIn(c, &account)
	flash(c, "Connecté.")
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) logout(c *gin.Context) {
	signOut(c)
	flash(c, "Déconnecté.")
	c.Redirect(http.StatusFound, "/")
}
