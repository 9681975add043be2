package middleware

import (
	"rentdesk/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session user and puts it on the request context
// for the render layer. Routes that need a guarantee still use RequireAuth.
func InjectUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(string); ok && uid != "" {
				if user, err := st.FindUserByID(c.Request.Context(), uid); err == nil {
					c.Set("CurrentUser", *user)
				}
			}
		}

		c.Next()
	}
}
