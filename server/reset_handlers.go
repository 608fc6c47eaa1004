package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/token"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) showResetRequest(c *gin.Context) {
	s.render(c, "reset_password_request.html", nil)
}

func (s *Server) resetRequest(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	if !ValidateEmail(email) {
		flash(c, "Email invalide.")
		c.Redirect(http.StatusFound, "/reset_password")
		return
	}

	var account model.Account
	if err := s.DB.Where("email = ?", email).First(&account).Error; err != nil {
		// same answer whether or not the address exists
		flash(c, "Si cet email existe, un lien de réinitialisation sera envoyé.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	raw, err := s.Tokens.Issue(account.Id, account.Email)
	if err != nil {
		Log.Error("fail to issue reset token: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/reset_password")
		return
	}

	// no mailer wired yet: surface the link to the requester so the
	// flow stays testable in development
	flash(c, "Lien de réinitialisation généré (dev). Copie-colle:")
	flash(c, "/reset_password/"+raw)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) showResetForm(c *gin.Context) {
	raw := c.Param("token")
	if _, ok := s.verifyResetToken(c, raw); !ok {
		return
	}
	s.render(c, "reset_password_form.html", gin.H{"token": raw})
}

func (s *Server) resetSubmit(c *gin.Context) {
	raw := c.Param("token")
	account, ok := s.verifyResetToken(c, raw)
	if !ok {
		return
	}

	p1 := c.PostForm("password")
	p2 := c.PostForm("password2")
	if p1 != p2 {
		flash(c, "Les mots de passe ne correspondent pas.")
		c.Redirect(http.StatusFound, "/reset_password/"+raw)
		return
	}
	if ok, msg := ValidatePassword(p1); !ok {
		flash(c, msg)
		c.Redirect(http.StatusFound, "/reset_password/"+raw)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p1), bcrypt.DefaultCost)
	if err != nil {
		Log.Error("fail to hash password: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/reset_password/"+raw)
		return
	}

	account.PasswordHash = string(hash)
	if err := s.DB.Save(account).Error; err != nil {
		Log.Error("fail to save new password: ", err)
		flash(c, "Erreur interne, réessaie.")
		c.Redirect(http.StatusFound, "/reset_password/"+raw)
		return
	}

	flash(c, "Mot de passe mis à jour. Tu peux te connecter.")
	c.Redirect(http.StatusFound, "/login")
}

// verifyResetToken checks the signed token and that it still matches
// the account's current email, flashing and redirecting to restart the
// flow otherwise.
func (s *Server) verifyResetToken(c *gin.Context, raw string) (*model.Account, bool) {
	uid, email, err := s.Tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			flash(c, "Lien expiré. Recommence la procédure.")
		} else {
			flash(c, "Lien invalide.")
		}
		c.Redirect(http.StatusFound, "/reset_password")
		return nil, false
	}

	var account model.Account
	if dbErr := s.DB.Where("id = ?", uid).First(&account).Error; dbErr != nil || account.Email != email {
		flash(c, "Jeton non valide.")
		c.Redirect(http.StatusFound, "/reset_password")
		return nil, false
	}
	return &account, true
}
