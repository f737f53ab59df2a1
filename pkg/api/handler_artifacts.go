package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/services"
)

type createArtifactRequest struct {
	ObjectKey string `json:"object_key" validate:"required,max=1024"`
	MediaType string `json:"media_type,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty" validate:"omitempty,min=0"`
	RunID     string `json:"run_id,omitempty"`
}

// createArtifactHandler handles POST /v1/artifacts. The service HEAD-probes
// the object before recording, same as the intake by-reference path.
func (s *Server) createArtifactHandler(c *echo.Context) error {
	var req createArtifactRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	row, err := s.artifacts.Create(c.Request().Context(), identityFrom(c), services.ArtifactInput{
		ObjectKey: req.ObjectKey,
		MediaType: req.MediaType,
		SizeBytes: req.SizeBytes,
		RunID:     req.RunID,
	})
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}
