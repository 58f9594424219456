package salesserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/salesdata/orders-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns an RFC 7807 response for a plain error.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

func respondNotFound(c *gin.Context, resourceType string, identifier any) {
	respondProblem(c, apierrors.NewNotFoundProblem(resourceType, identifier))
}

func respondMissingParam(c *gin.Context, params ...string) {
	respondProblem(c, apierrors.NewMissingParamProblem(params...))
}
