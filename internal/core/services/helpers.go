package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// parseID treats a malformed id like a missing record: nothing can be stored
// under it.
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NotFoundError(kind)
	}
	return parsed, nil
}

// validationError flattens validator output into a single ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				parts = append(parts, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
		}
		return domain.ValidationError("%s", strings.Join(parts, "; "))
	}
	return domain.ValidationError("%s", err.Error())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock = systemClock{}

const bikeCacheTTL = 15 * time.Minute

func bikeCacheKey(bikeID string) string {
	return fmt.Sprintf("bike:%s", bikeID)
}
