package handlers

import (
	"net/http"
	"strconv"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := &auditHandler{auditService: auditService}

	rg.GET("/audit-logs", middleware.RequireRoles(domain.RoleAdmin), h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit logs
// @Description Newest first, filterable by entity or acting user. Admin only.
// @Tags audit
// @Produce json
// @Param entityType query string false "Filter by entity type"
// @Param entityID query string false "Filter by entity ID"
// @Param userID query string false "Filter by acting user"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.AuditLog
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := portsrepo.AuditLogFilter{
		EntityType: c.Query("entityType"),
		EntityID:   c.Query("entityID"),
		UserID:     c.Query("userID"),
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
