package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// registerTemplateRoutes registers the template catalog routes.
func registerTemplateRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", listTemplates)
}

// listTemplates godoc
// @Summary List journal templates
// @Description Retrieves the built-in catalog of writing templates
// @Tags templates
// @Produce  json
// @Success 200 {array} domain.JournalTemplate
// @Router /templates [get]
func listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Templates())
}
