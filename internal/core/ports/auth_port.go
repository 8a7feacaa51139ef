package ports

import "github.com/sm8ta/webike_shop_microservice/internal/core/domain"

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
}
