package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/util"
)

var Validate = util.NewValidator()

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}

	trans := make([]*ErrorResponse, 0, len(errs))
	for _, fe := range errs {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Error(),
		})
	}
	return trans
}

// ValidBody gets the body from *fiber.Ctx using fiber#BodyParser(),
// and validates it using the validator singleton. If the validation passed it
// writes the unmarshalled body to dest and returns nil, otherwise it returns
// an error. Notice that dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return mqerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(dest); err != nil {
		return mqerr.NewInvalidViolations(err)
	}

	return nil
}
