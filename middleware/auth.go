// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	doctorRepo "clinicore/database/repository/doctor"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthDoctorMiddleware authenticates requests with a doctor bearer
// token and puts the doctor's identity on the request context.
func JWTAuthDoctorMiddleware(doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		doctorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		doc, err := doctors.GetByID(c.Request.Context(), doctorID)
		if err != nil || doc == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Doctor not found"})
			return
		}

		c.Set("doctorID", doc.ID)
		c.Set("clinicID", doc.ClinicID)
		c.Next()
	}
}
