package controllers

import (
	"github.com/gin-gonic/gin"

	"trippy/pkg/utils"
)

type HealthController struct {
	provider string
	store    string
}

func NewHealthController(provider, store string) *HealthController {
	return &HealthController{provider: provider, store: store}
}

func (h *HealthController) Healthz(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"generation_provider": h.provider,
		"preference_store":    h.store,
	}, "ok")
}
