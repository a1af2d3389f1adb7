package users

import (
	"errors"
	"net/http"

	"ecocollect/database"
	"ecocollect/models"
	"ecocollect/utils"

	"gorm.io/gorm"
)

// GET /v1/users/info
func UserInfoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	email, okEmail := utils.GetUserEmail(r)
	if !ok || !okEmail || email == "" {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	db := database.DB

	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	txs, err := userLedger(db, email)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	var inProgress, verified int64
	db.Model(&models.CollectionTask{}).Where("collector_id = ? AND status = ?", email, models.TaskInProgress).Count(&inProgress)
	db.Model(&models.CollectionTask{}).Where("collector_id = ? AND status = ?", email, models.TaskVerified).Count(&verified)
	var reports int64
	db.Model(&models.WasteReport{}).Where("email = ?", email).Count(&reports)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"name":   user.Name,
				"email":  user.Email,
				"status": user.Status,
			},
			"balance": utils.RoundFloat(models.DisplayBalance(txs), 2),
			"tasks": map[string]interface{}{
				"in_progress": inProgress,
				"verified":    verified,
			},
			"reports": reports,
		},
	})
}
