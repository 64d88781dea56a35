package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"premiumcalc/internal/models/request_models"
	"premiumcalc/internal/models/response_models"
	"premiumcalc/internal/services"
	"premiumcalc/pkg/utils"
)

type PremiumController struct {
	premiumService services.PremiumServiceInterface
	intakeService  services.IntakeServiceInterface
}

func NewPremiumController(
	premiumService services.PremiumServiceInterface,
	intakeService services.IntakeServiceInterface) *PremiumController {
	return &PremiumController{
		premiumService: premiumService,
		intakeService:  intakeService,
	}
}

// Predict godoc
// @Summary Predict a premium
// @Description Estimate the yearly premium for one applicant. No side effects.
// @Tags Premiums
// @Accept json
// @Produce json
// @Param request body request_models.PremiumRequest true "Applicant attributes"
// @Success 200 {object} response_models.PredictionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /predict [post]
func (pc *PremiumController) Predict(c *gin.Context) {
	var req request_models.PremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	premium, err := pc.premiumService.Predict(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.PredictionResponse{
		PredictedPremium: response_models.Premium(premium),
	})
}

// Estimate godoc
// @Summary Predict and record a premium
// @Description Same response as /predict; the estimate is also appended to the configured record sinks.
// @Tags Premiums
// @Accept json
// @Produce json
// @Param request body request_models.PremiumRequest true "Applicant attributes"
// @Success 200 {object} response_models.PredictionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /premiums/estimate [post]
func (pc *PremiumController) Estimate(c *gin.Context) {
	var req request_models.PremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	premium, err := pc.intakeService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.PredictionResponse{
		PredictedPremium: response_models.Premium(premium),
	})
}

// ModelInfo godoc
// @Summary Loaded model
// @Tags Premiums
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /model [get]
func (pc *PremiumController) ModelInfo(c *gin.Context) {
	utils.RespondSuccess(c, pc.premiumService.ModelInfo(), "Fetched model info successfully")
}
