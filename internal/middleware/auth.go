package middleware

import (
	"net/http"
	"strings"

	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog/log"
)

// Context keys set by RequireStudent.
const (
	ContextStudentID   = "student_id"
	ContextStudentName = "student_name"
)

// RequireStudent validates the bearer token and puts the verified student
// identity into the gin context. Requests without a valid identity are
// rejected with 401 before reaching the handler.
func RequireStudent(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token claims"})
			return
		}
		studentID, _ := claims["student_id"].(string)
		if studentID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "token carries no student identity"})
			return
		}

		c.Set(ContextStudentID, studentID)
		if name, ok := claims["student_name"].(string); ok {
			c.Set(ContextStudentName, name)
		}
		c.Next()
	}
}
