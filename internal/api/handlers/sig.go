package handlers

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/models"
	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/metrics"
)

// DecodeSIG godoc
// @Summary Decode SIG RDATA
// @Description Decodes hex-encoded SIG RDATA. Zero-length RDATA decodes to an unsigned record.
// @Tags sig
// @Accept json
// @Produce json
// @Param request body models.SIGDecodeRequest true "RDATA and owner context"
// @Success 200 {object} models.SIGRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /sig/decode [post]
func (h *Handler) DecodeSIG(c *gin.Context) {
	var req models.SIGDecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	owner := req.Owner
	if strings.TrimSpace(owner) == "" {
		owner = "."
	}
	hdr, err := header(owner, req.TTL, req.Class, ".")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	rdata, err := hex.DecodeString(strings.TrimSpace(req.RDataHex))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "rdata_hex: " + err.Error()})
		return
	}

	off := 0
	rec, err := dns.ParseSIGRData(rdata, &off, len(rdata))
	metrics.ObserveCodec(metrics.OpDecode, err)
	if err != nil {
		h.logger.Debug("SIG decode failed", "error", err, "rdlen", len(rdata))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	rec.SetHeader(hdr)

	resp, err := sigResponse(rec, h.textOptions(nil))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EncodeSIG godoc
// @Summary Encode SIG presentation text
// @Description Parses SIG RDATA in presentation form and returns its wire, canonical and signing-prefix encodings
// @Tags sig
// @Accept json
// @Produce json
// @Param request body models.SIGEncodeRequest true "Presentation text and owner context"
// @Success 200 {object} models.SIGRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /sig/encode [post]
func (h *Handler) EncodeSIG(c *gin.Context) {
	var req models.SIGEncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	opts := h.textOptions(req.LegacyLabels)
	rec, err := h.parseSIG(req.Owner, req.TTL, req.Class, req.Text, req.Origin, opts)
	if err != nil {
		writeParseError(c, err)
		return
	}

	resp, err := sigResponse(rec, opts)
	metrics.ObserveCodec(metrics.OpEncode, err)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseSIG builds a record from request fields. A relative owner or signer is
// completed with origin, falling back to the configured default origin.
func (h *Handler) parseSIG(owner string, ttl uint32, class, text, origin string, opts dns.TextOptions) (*dns.SIGRecord, error) {
	if origin == "" {
		origin = h.cfg.Codec.DefaultOrigin
	}
	hdr, err := header(owner, ttl, class, origin)
	if err != nil {
		return nil, err
	}
	rec, err := dns.ParseSIGText(hdr, text, origin, opts)
	metrics.ObserveCodec(metrics.OpParse, err)
	if err != nil {
		h.logger.Debug("SIG parse failed", "error", err, "owner", hdr.Name)
		return nil, err
	}
	return rec, nil
}

func (h *Handler) textOptions(override *bool) dns.TextOptions {
	opts := h.cfg.TextOptions()
	if override != nil {
		opts.LegacyLabels = *override
	}
	return opts
}

func header(owner string, ttl uint32, class, origin string) (dns.RRHeader, error) {
	name, err := dns.AbsoluteName(owner, origin)
	if err != nil {
		return dns.RRHeader{}, fmt.Errorf("owner: %w", err)
	}
	cls := dns.ClassIN
	if class != "" {
		var ok bool
		if cls, ok = dns.ClassFromString(class); !ok {
			return dns.RRHeader{}, fmt.Errorf("unknown class %q", class)
		}
	}
	return dns.NewRRHeader(name, cls, ttl), nil
}

func writeParseError(c *gin.Context, err error) {
	resp := models.ErrorResponse{Error: err.Error()}
	var pe *dns.ParseError
	if errors.As(err, &pe) {
		resp.Field = pe.Field
	}
	c.JSON(http.StatusBadRequest, resp)
}

// sigResponse renders rec in every form the API exposes.
func sigResponse(rec *dns.SIGRecord, opts dns.TextOptions) (models.SIGRecordResponse, error) {
	wire, err := rec.MarshalRData()
	if err != nil {
		return models.SIGRecordResponse{}, err
	}
	canonical, err := rec.MarshalCanonical()
	if err != nil {
		return models.SIGRecordResponse{}, err
	}
	prefix, err := rec.SigningPrefix()
	if err != nil {
		return models.SIGRecordResponse{}, err
	}

	h := rec.Header()
	resp := models.SIGRecordResponse{
		Owner:            dns.Fqdn(h.Name),
		TTL:              h.TTL,
		Class:            dns.RecordClass(h.Class).String(),
		TypeCovered:      rec.TypeCovered.String(),
		Algorithm:        rec.Algorithm,
		Labels:           rec.Labels,
		OrigTTL:          rec.OrigTTL,
		Expiration:       dns.FormatSIGTime(rec.Expiration),
		Inception:        dns.FormatSIGTime(rec.Inception),
		KeyTag:           rec.KeyTag,
		Signer:           dns.Fqdn(rec.SignerName),
		Signed:           rec.IsSigned(),
		Presentation:     dns.FormatSIG(rec, opts),
		WireHex:          hex.EncodeToString(wire),
		CanonicalHex:     hex.EncodeToString(canonical),
		SigningPrefixHex: hex.EncodeToString(prefix),
	}
	if sig, ok := rec.Signature.Bytes(); ok {
		resp.Signature = base64.StdEncoding.EncodeToString(sig)
	}
	metrics.ObserveCodec(metrics.OpFormat, nil)
	return resp, nil
}
