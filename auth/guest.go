package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL bounds how long an idle cart survives.
const SessionTTL = 24 * time.Hour

// POST /auth/guest
func CreateGuestSession(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + generateRandomString(16)

		// Register the session so its cart exists and its expiry starts now.
		carts.Fetch(sessionID)

		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": time.Now().Add(SessionTTL),
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"role":       "guest",
		"exp":        time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
