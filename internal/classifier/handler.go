package classifier

import (
	"net/http"

	"holyland_phone/platform/apperr"
	"holyland_phone/platform/httpkit"
	"holyland_phone/platform/phone"
	"holyland_phone/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the phone classification endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Classify handles GET /api/v1/phones/classify?number=...
func (h *Handler) Classify(c *gin.Context) {
	var q ClassifyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'number' is required (max 32 chars)", nil)
		return
	}

	httpkit.OK(c, h.svc.Classify(c.Request.Context(), q.Number, q.Clean))
}

// ClassifyBatch handles POST /api/v1/phones/classify
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "body must contain a non-empty 'numbers' array", nil)
		return
	}

	resp, err := h.svc.ClassifyBatch(c.Request.Context(), req.Numbers, req.Clean)
	if httpkit.HandleError(c, err) {
		_ = c.Error(err)
		return
	}

	httpkit.OK(c, resp)
}

// International handles GET /api/v1/phones/international?number=...
func (h *Handler) International(c *gin.Context) {
	var q ClassifyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'number' is required (max 32 chars)", nil)
		return
	}

	httpkit.OK(c, h.svc.International(q.Number, q.Clean))
}

// Validate handles POST /api/v1/phones/validate
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	req.Phone = prepare(req.Phone, req.Clean)

	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("not a valid Israeli or Palestinian phone number").
			WithDetails(gin.H{"phone": req.Phone}))
		return
	}

	number := phone.NewHolyLand(req.Phone)
	httpkit.OK(c, ValidateResponse{
		Valid:    true,
		Local:    number.Local(),
		Category: number.Category(),
	})
}
