package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/models"
	"github.com/jroosing/hydrasig/internal/dns"
)

// ListZones godoc
// @Summary List all zones
// @Description Returns the zones loaded at startup
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	zones := h.Zones()

	summaries := make([]models.ZoneSummary, 0, len(zones))
	for _, z := range zones {
		summaries = append(summaries, models.ZoneSummary{
			Name:           z.Origin,
			RecordCount:    len(z.Records),
			SignatureCount: len(z.SIGs()),
		})
	}

	c.JSON(http.StatusOK, models.ZoneListResponse{
		Zones: summaries,
		Count: len(summaries),
	})
}

// GetZone godoc
// @Summary Get zone signatures
// @Description Returns the SIG records of a zone, optionally only those covering one type
// @Tags zones
// @Produce json
// @Param name path string true "Zone name"
// @Param type query string false "Covered type mnemonic"
// @Success 200 {object} models.ZoneDetailResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [get]
func (h *Handler) GetZone(c *gin.Context) {
	name := c.Param("name")

	var covered dns.RecordType
	if s := c.Query("type"); s != "" {
		t, ok := dns.TypeFromString(s)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown type " + s})
			return
		}
		covered = t
	}

	opts := h.textOptions(nil)
	for _, z := range h.Zones() {
		if !dns.EqualNames(z.Origin, name) {
			continue
		}
		sigs := make([]models.SIGRecordResponse, 0)
		for _, sig := range z.SIGs() {
			if covered != 0 && sig.TypeCovered != covered {
				continue
			}
			r, err := sigResponse(sig, opts)
			if err != nil {
				h.logger.Error("failed to render zone signature", "zone", z.Origin, "owner", sig.Header().Name, "error", err)
				continue
			}
			sigs = append(sigs, r)
		}
		c.JSON(http.StatusOK, models.ZoneDetailResponse{Name: z.Origin, Signatures: sigs})
		return
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "zone not found"})
}
