package controllers

import (
	"net/http"

	"ecocollect/database"
	"ecocollect/models"
	"ecocollect/utils"
)

// GET /v1/info
func InfoPublicHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var setting models.Setting
	if err := db.Model(&models.Setting{}).
		Select("name, maintenance, closed_register").
		Take(&setting).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to load application info",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"name":            setting.Name,
			"maintenance":     setting.Maintenance,
			"closed_register": setting.ClosedRegister,
			"rewards":         models.RewardCatalog(),
		},
	})
}
