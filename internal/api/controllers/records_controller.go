package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"premiumcalc/internal/services"
	"premiumcalc/pkg/utils"
)

type RecordsController struct {
	historyService services.RecordHistoryServiceInterface
}

func NewRecordsController(historyService services.RecordHistoryServiceInterface) *RecordsController {
	return &RecordsController{
		historyService: historyService,
	}
}

// ListRecords godoc
// @Summary List recorded estimates
// @Description Newest first. Requires the postgres record sink.
// @Tags Premiums
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (1-100)" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 501 {object} utils.APIResponse
// @Router /premiums/records [get]
func (rc *RecordsController) ListRecords(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	records, err := rc.historyService.ListRecords(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Fetched records successfully")
}
