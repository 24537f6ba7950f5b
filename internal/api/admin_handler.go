package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
)

// AdminHandler exposes the in-app seeding action. The route is registered
// behind the demo gate, the auth middleware and the admin allow-list.
type AdminHandler struct {
	seeds     core.SeedService
	appConfig *config.Config
	logger    *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(seeds core.SeedService, appConfig *config.Config, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{seeds: seeds, appConfig: appConfig, logger: logger}
}

// Seed handles POST /api/v1/admin/seed: reads the local snapshot file and
// upserts it into the remote store with merge semantics.
func (h *AdminHandler) Seed(c *gin.Context) {
	seed, err := datasource.LoadSeedFile(h.appConfig.SeedPath)
	if err != nil {
		h.logger.Error("Failed to load seed file", zap.String("path", h.appConfig.SeedPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load seed file", Details: err.Error()})
		return
	}

	stats, err := h.seeds.Import(c.Request.Context(), seed)
	if err != nil {
		h.logger.Error("Seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Seeding failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
