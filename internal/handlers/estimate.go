package handlers

import (
	"net/http"

	"heating_leads/internal/models"
	"heating_leads/internal/wizard"

	"github.com/gin-gonic/gin"
)

type estimateQuery struct {
	HeatingSystem        models.HeatingSystem `form:"heating_system" binding:"required"`
	CurrentConsumption   *float64             `form:"current_consumption" binding:"required"`
	ProjectedConsumption *float64             `form:"projected_consumption" binding:"required"`
}

// @Summary      Quick estimate
// @Description  Stateless CO2 savings and credit value for a heating switch to electricity.
// @Tags         estimate
// @Produce      json
// @Param        heating_system         query  string  true  "Current heating system"  Enums(gas,oil,pellet,other)
// @Param        current_consumption    query  number  true  "Annual consumption in the fuel's unit"
// @Param        projected_consumption  query  number  true  "Projected annual electricity in kWh"
// @Success      200  {object}  models.ResultsSummary
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/v1/estimate [get]
func (h *Handler) estimate(c *gin.Context) {
	var q estimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}
	sum, err := wizard.Estimate(q.HeatingSystem, *q.CurrentConsumption, *q.ProjectedConsumption)
	if err != nil {
		h.writeError(c, err, "estimate_failed", nil)
		return
	}
	c.JSON(http.StatusOK, sum)
}
