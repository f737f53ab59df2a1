package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/missionloop/groundcontrol/pkg/secrets"
)

type createSecretRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Value string `json:"value" validate:"required,max=65536"`
}

// secretAccessResponse pairs the decrypted value with its metadata. This is
// the only place a secret value ever crosses the wire.
type secretAccessResponse struct {
	Value    string            `json:"value"`
	Metadata *secrets.Metadata `json:"metadata"`
}

// createSecretHandler handles POST /v1/secrets. The response is metadata
// only; values are write-once from the caller's perspective.
func (s *Server) createSecretHandler(c *echo.Context) error {
	var req createSecretRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.respondReason(c, err)
	}

	meta, err := s.vault.Create(c.Request().Context(), identityFrom(c), req.Name, req.Value)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusCreated, meta)
}

// listSecretsHandler handles GET /v1/secrets. Metadata only.
func (s *Server) listSecretsHandler(c *echo.Context) error {
	metas, err := s.vault.List(c.Request().Context(), identityFrom(c).WorkspaceID)
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"secrets": metas})
}

// accessSecretHandler handles POST /v1/secrets/:id/access. Every access is
// recorded on the workspace event stream.
func (s *Server) accessSecretHandler(c *echo.Context) error {
	value, meta, err := s.vault.Access(c.Request().Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		return s.respondReason(c, err)
	}
	return c.JSON(http.StatusOK, &secretAccessResponse{Value: value, Metadata: meta})
}
