package utils

import (
	"errors"

	"github.com/JWDT/bug-tracker/types"
	"github.com/gin-gonic/gin"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

// GetActorFromContext builds the ActorContext passed into every workflow
// call from the verified claims and request metadata.
func GetActorFromContext(c *gin.Context) (types.ActorContext, error) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return types.ActorContext{}, err
	}
	return types.ActorContext{
		UserID:    userID,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}, nil
}
