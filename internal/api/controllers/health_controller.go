package controllers

import (
	"github.com/gin-gonic/gin"
	"premiumcalc/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (hc *HealthController) Healthz(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
}
