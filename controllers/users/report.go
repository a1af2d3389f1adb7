package users

import (
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"ecocollect/database"
	"ecocollect/models"
	"ecocollect/utils"

	"gorm.io/gorm"
)

// Points credited when a waste report is submitted.
const reportReward = 10

// POST /v1/reports
// Multipart form: waste_type and estimated_kg are required, plus either a
// free-form location or a lat/lon pair that gets reverse geocoded. An
// optional "photo" file is stored alongside the report.
func CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetUserEmail(r)
	if !ok || email == "" {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	uid, _ := utils.GetUserID(r)

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid form data"})
		return
	}

	wasteType := strings.TrimSpace(r.FormValue("waste_type"))
	estimatedKg, err := strconv.Atoi(strings.TrimSpace(r.FormValue("estimated_kg")))
	if wasteType == "" || err != nil || estimatedKg <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "waste_type and a positive estimated_kg are required"})
		return
	}

	location := strings.TrimSpace(r.FormValue("location"))
	if location == "" {
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(r.FormValue("latitude")), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(r.FormValue("longitude")), 64)
		if latErr != nil || lonErr != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Provide a location or a latitude/longitude pair"})
			return
		}
		location = utils.ReverseGeocode(r.Context(), lat, lon)
	}

	var imageKey *string
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		key := fmt.Sprintf("reports/%d-%d%s", uid, time.Now().UnixNano(), path.Ext(header.Filename))
		if err := utils.UploadToS3(key, file, header.Size); err != nil {
			log.Printf("[reports] photo upload error: %v", err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store photo"})
			return
		}
		imageKey = &key
	}

	report := models.WasteReport{
		Email:       email,
		Location:    location,
		WasteType:   wasteType,
		EstimatedKg: estimatedKg,
		ImageKey:    imageKey,
	}
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		// every report opens a pending collection task on the board
		task := models.CollectionTask{
			Location:  location,
			WasteType: wasteType,
			Amount:    fmt.Sprintf("%d kg", estimatedKg),
			Status:    models.TaskPending,
			Date:      time.Now().Format("2006-01-02"),
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		entry := models.Transaction{
			Email:       email,
			Type:        models.TxEarnedReport,
			Amount:      reportReward,
			Description: "Report submitted: " + wasteType,
			Reference:   utils.NewTxRef(uid),
		}
		return tx.Create(&entry).Error
	})
	if txErr != nil {
		log.Printf("[reports] create error: %v", txErr)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Report submitted successfully! You earned points.",
		Data:    report,
	})
}

// GET /v1/reports
func ReportListHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetUserEmail(r)
	if !ok || email == "" {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var reports []models.WasteReport
	if err := database.DB.Where("email = ?", email).Order("id DESC").Find(&reports).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	items := make([]map[string]interface{}, 0, len(reports))
	for _, rep := range reports {
		item := map[string]interface{}{
			"id":           rep.ID,
			"location":     rep.Location,
			"waste_type":   rep.WasteType,
			"estimated_kg": rep.EstimatedKg,
			"created_at":   rep.CreatedAt,
		}
		if key := utils.GetStringValue(rep.ImageKey); key != "" {
			if url, err := utils.GenerateSignedURL(key, 3600); err == nil {
				item["image_url"] = url
			}
		}
		items = append(items, item)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: items})
}
