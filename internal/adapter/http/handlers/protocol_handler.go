package handlers

import (
	"log"
	"net/http"

	response "konkred_vault/internal/adapter/http/dto/response"
	"konkred_vault/internal/usecase/interfaces"
	"konkred_vault/pkg"

	"github.com/gin-gonic/gin"
)

// ProtocolHandler exposes catalog ID lookup. Catalog management lives in a
// separate service.

type ProtocolHandler struct {
	protocols interfaces.IProtocolRepository
}

func NewProtocolHandler(repo interfaces.IProtocolRepository) *ProtocolHandler {
	return &ProtocolHandler{protocols: repo}
}

func (h *ProtocolHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	protocol, err := h.protocols.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[catalog][handler] lookup failed protocol_id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if protocol.ID == "" {
		appErr := pkg.NewDomainErrorSimple("PROTOCOL_NOT_FOUND", "Protocol not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProtocol(protocol))
}
