package handler

import (
	"encoding/csv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/response"
)

// ImportExportHandler handles bulk lead import and export
type ImportExportHandler struct {
	importService *service.ImportService
	exportService *service.ExportService
}

// NewImportExportHandler creates a new import/export handler
func NewImportExportHandler(importService *service.ImportService, exportService *service.ExportService) *ImportExportHandler {
	return &ImportExportHandler{
		importService: importService,
		exportService: exportService,
	}
}

// Import handles a CSV upload of leads. The file goes in a multipart
// form under the "file" field, first row is the header.
func (h *ImportExportHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A CSV file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		response.BadRequest(c, "Invalid CSV file")
		return
	}
	if len(records) == 0 {
		response.BadRequest(c, "CSV file is empty")
		return
	}

	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	summary, err := h.importService.ImportLeads(c.Request.Context(), *userID, columns, rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import completed", summary)
}

// Export streams the filtered leads as a CSV download
func (h *ImportExportHandler) Export(c *gin.Context) {
	filter, err := parseLeadFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rows, err := h.exportService.Export(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads_export.csv"`)

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(h.exportService.Header()); err != nil {
		return
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return
		}
	}
	writer.Flush()
}
