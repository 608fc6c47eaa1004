package middlewares

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"gorm.io/gorm"
)

// SessionUserKey is the session field holding the authenticated
// account id.
const SessionUserKey = "uid"

// ContextAccountKey is where the loaded account is stashed for
// handlers downstream.
const ContextAccountKey = "current_account"

// SessionUser resolves the session's uid to an Account and attaches it
// to the request context. A missing or dangling uid simply leaves the
// request anonymous; guarding routes is the handlers' concern.
func SessionUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		uid, ok := session.Get(SessionUserKey).(string)
		if !ok || uid == "" {
			c.Next()
			return
		}

		var account model.Account
		if err := db.Where("id = ?", uid).First(&account).Error; err != nil {
			// stale cookie pointing at a removed row
			session.Delete(SessionUserKey)
			session.Save()
			c.Next()
			return
		}

		c.Set(ContextAccountKey, &account)
		c.Next()
	}
}

// CurrentAccount returns the account loaded by SessionUser, or nil for
// an anonymous request.
func CurrentAccount(c *gin.Context) *model.Account {
	v, exists := c.Get(ContextAccountKey)
	if !exists {
		return nil
	}
	account, ok := v.(*model.Account)
	if !ok {
		return nil
	}
	return account
}
