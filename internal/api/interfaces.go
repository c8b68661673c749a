package api

import (
	"time"

	"github.com/limbo/flicks/pkg/entity"
	jwtservice "github.com/limbo/flicks/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
	// Lifetime of issued tokens, used as session cookie max age
	TTL() time.Duration
}
