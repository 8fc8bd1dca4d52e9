package front

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anikashraful/taskflow/internal/taskapi"
)

// The session is two cookies: the opaque bearer token and the cached user
// profile. Both live from sign-in to sign-out and are destroyed together on
// any authentication failure while fetching the user.
const (
	tokenCookie = "token"
	userCookie  = "user"
)

func setSession(c *gin.Context, creds taskapi.Credentials) {
	setCookie(c, tokenCookie, creds.Token)
	saveUser(c, creds.User)
}

func saveUser(c *gin.Context, user taskapi.User) {
	b, err := json.Marshal(user)
	if err != nil {
		log.Printf("failed to marshal cached user: %v", err)
		return
	}
	setCookie(c, userCookie, base64.StdEncoding.EncodeToString(b))
}

func setCookie(c *gin.Context, name, value string) {
	c.SetCookie(name, value, config.CookieMaxAge, "/", "", config.CookieSecure, true)
}

func sessionToken(c *gin.Context) string {
	token, err := c.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func cachedUser(c *gin.Context) (taskapi.User, bool) {
	var user taskapi.User
	raw, err := c.Cookie(userCookie)
	if err != nil {
		return user, false
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return user, false
	}
	if err := json.Unmarshal(b, &user); err != nil {
		return user, false
	}
	return user, true
}

func clearSession(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", config.CookieSecure, true)
	c.SetCookie(userCookie, "", -1, "/", "", config.CookieSecure, true)
}

// signOut tears the session down and sends the user back to the sign-in
// page.
func signOut(c *gin.Context) {
	clearSession(c)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// requireSession gates the authenticated pages on the presence of the token
// cookie. The token's validity is checked by the remote API on the first
// fetch each handler performs.
func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionToken(c) == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()

			return
		}
		c.Next()
	}
}
