package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vishal-keshav/expense-track/src/config"
	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/processor"
	"github.com/vishal-keshav/expense-track/src/security/validation"
	"github.com/vishal-keshav/expense-track/src/services"
	"github.com/vishal-keshav/expense-track/src/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(service services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: service,
	}
}

// HandleUpload accepts a multipart CSV upload, runs it through the expense
// pipeline and responds with the daily aggregate as JSON.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "No file part in request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Filename == "" {
		utils.SendJSONError(w, "No file selected.", http.StatusBadRequest)
		return
	}

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
		logger.L.Warn("File content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.L.Info("Processing upload request", "filename", fileHeader.Filename)
	result, err := h.uploadService.ProcessUpload(file, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParsingFailed):
			logger.L.Warn("Upload failed due to CSV parsing errors", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing CSV file: %v", err), http.StatusBadRequest)
		case errors.Is(err, processor.ErrNoValidData):
			logger.L.Warn("Upload contained no usable expense rows", "filename", fileHeader.Filename)
			utils.SendJSONError(w, "No valid transactions found in file.", http.StatusUnprocessableEntity)
		default:
			logger.L.Error("Internal error processing upload", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the file.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for upload result", "error", err)
	}
}

// HandleGetReport re-serves a previously computed report by ID, with ETag
// support so clients can re-render without refetching an unchanged payload.
func (h *UploadHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("id")
	if reportID == "" {
		utils.SendJSONError(w, "Report ID is required.", http.StatusBadRequest)
		return
	}

	result, err := h.uploadService.GetReport(reportID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			utils.SendJSONError(w, "Report not found or expired.", http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving report", "reportID", reportID, "error", err)
		utils.SendJSONError(w, "Error retrieving report.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(result)
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		logger.L.Warn("Proceeding without ETag check", "reportID", reportID, "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for report", "reportID", reportID, "error", err)
	}
}
