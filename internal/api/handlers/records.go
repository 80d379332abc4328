package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/models"
	"github.com/jroosing/hydrasig/internal/database"
	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/metrics"
)

var errNoStore = models.ErrorResponse{Error: "record store not configured"}

// ListRecords godoc
// @Summary List stored SIG records
// @Description Lists stored records, optionally filtered
// @Tags records
// @Produce json
// @Param owner query string false "Owner name"
// @Param type query string false "Covered type mnemonic"
// @Param signer query string false "Signer name"
// @Param key_tag query int false "Key tag"
// @Param expired_before query string false "YYYYMMDDHHMMSS; only records expiring earlier"
// @Param limit query int false "Maximum number of records"
// @Success 200 {object} models.RecordListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, errNoStore)
		return
	}

	var (
		stored []database.StoredSIG
		err    error
	)
	if exp := c.Query("expired_before"); exp != "" {
		t, perr := dns.ParseSIGTime(exp)
		if perr != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "expired_before: " + perr.Error()})
			return
		}
		stored, err = h.db.ExpiredBefore(t)
	} else {
		f, ferr := recordFilter(c)
		if ferr != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ferr.Error()})
			return
		}
		stored, err = h.db.ListSIGs(f)
	}
	if err != nil {
		h.logger.Error("failed to list SIG records", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list records"})
		return
	}

	opts := h.textOptions(nil)
	out := make([]models.StoredRecordResponse, 0, len(stored))
	for _, s := range stored {
		r, err := storedResponse(s, opts)
		if err != nil {
			h.logger.Error("failed to render stored record", "id", s.ID, "error", err)
			continue
		}
		out = append(out, r)
	}
	c.JSON(http.StatusOK, models.RecordListResponse{Records: out, Count: len(out)})
}

func recordFilter(c *gin.Context) (database.SIGFilter, error) {
	f := database.SIGFilter{
		Owner:  c.Query("owner"),
		Signer: c.Query("signer"),
	}
	if s := c.Query("type"); s != "" {
		t, ok := dns.TypeFromString(s)
		if !ok {
			return f, errors.New("type: unknown mnemonic " + strconv.Quote(s))
		}
		f.TypeCovered = t
	}
	if s := c.Query("key_tag"); s != "" {
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return f, errors.New("key_tag: must be 0..65535")
		}
		tag := uint16(n)
		f.KeyTag = &tag
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return f, errors.New("limit: must be a non-negative integer")
		}
		f.Limit = n
	}
	return f, nil
}

// CreateRecord godoc
// @Summary Store a SIG record
// @Description Parses a SIG record in presentation form and stores it
// @Tags records
// @Accept json
// @Produce json
// @Param request body models.RecordCreateRequest true "Record to store"
// @Success 201 {object} models.StoredRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, errNoStore)
		return
	}
	var req models.RecordCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	opts := h.textOptions(nil)
	rec, err := h.parseSIG(req.Owner, req.TTL, req.Class, req.Text, req.Origin, opts)
	if err != nil {
		writeParseError(c, err)
		return
	}

	id, err := h.db.PutSIG(rec, opts)
	if err != nil {
		h.logger.Error("failed to store SIG record", "owner", rec.Header().Name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store record"})
		return
	}
	h.refreshStoredGauge()

	s, err := h.db.GetSIG(id)
	if err != nil {
		h.logger.Error("failed to read back SIG record", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read record"})
		return
	}
	resp, err := storedResponse(*s, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	h.logger.Info("stored SIG record", "id", id, "owner", resp.Owner, "type_covered", resp.TypeCovered)
	c.JSON(http.StatusCreated, resp)
}

// GetRecord godoc
// @Summary Get a stored SIG record
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.StoredRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id} [get]
func (h *Handler) GetRecord(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, errNoStore)
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}
	s, err := h.db.GetSIG(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "record not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to get SIG record", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get record"})
		return
	}
	resp, err := storedResponse(*s, h.textOptions(nil))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRecord godoc
// @Summary Delete a stored SIG record
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/{id} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, errNoStore)
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}
	err := h.db.DeleteSIG(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "record not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to delete SIG record", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete record"})
		return
	}
	h.refreshStoredGauge()
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

func recordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid record id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) refreshStoredGauge() {
	n, err := h.db.Count()
	if err != nil {
		h.logger.Warn("failed to count stored records", "error", err)
		return
	}
	metrics.StoredRecords.Set(float64(n))
}

func storedResponse(s database.StoredSIG, opts dns.TextOptions) (models.StoredRecordResponse, error) {
	r, err := sigResponse(s.Record, opts)
	if err != nil {
		return models.StoredRecordResponse{}, err
	}
	return models.StoredRecordResponse{ID: s.ID, CreatedAt: s.CreatedAt, SIGRecordResponse: r}, nil
}
