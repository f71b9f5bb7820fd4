package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-scheduler/internal/catalog"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	catalog *catalog.Catalog
}

func NewServiceHandler(cat *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{catalog: cat}
}

// ======================================================
// ROUTES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.Services())
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.catalog.Lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	httpresp.OK(c, svc)
}
