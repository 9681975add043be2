package handlers

import (
	"net/http"
	"strings"

	"rentdesk/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves login and logout. There is no register endpoint:
// accounts only exist through bootstrap seeding.
type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler { return &AuthHandler{Store: st} }

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	user, err := h.Store.FindUserByUsername(c.Request.Context(), form.Username)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong username or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong username or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/assets")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
