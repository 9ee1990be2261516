package classifier

import (
	apphttp "holyland_phone/internal/http"
	"holyland_phone/platform/config"
	"holyland_phone/platform/logger"
	"holyland_phone/platform/validator"
)

// Module wires the phone classification HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(cfg config.PhoneConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc, val)
	return &Module{service: svc, handler: h}
}

func (m *Module) Name() string {
	return "classifier"
}

// Service exposes the classifier for non-HTTP callers such as the CLI.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/phones")
	group.GET("/classify", m.handler.Classify)
	group.POST("/classify", m.handler.ClassifyBatch)
	group.GET("/international", m.handler.International)
	group.POST("/validate", m.handler.Validate)
}

var _ apphttp.Module = (*Module)(nil)
