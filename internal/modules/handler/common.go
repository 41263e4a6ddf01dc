package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
)

// fail translates service errors into the HTTP envelope: validation
// failures and duplicate keys become 400, missing resources 404,
// everything else 500.
func fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(verr.Reason, nil))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// pathID parses the :id path segment. A second return of false means the
// 400 response has already been written.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid id", err))
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional uuid query parameter, nil when absent.
func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
