package handlers

import (
	"net/http"

	"voxia/internal/http/middleware"
	"voxia/internal/services"

	"github.com/gin-gonic/gin"
)

// PdfHandler serves request-form generation, download and deletion.
type PdfHandler struct {
	Pdf func(c *gin.Context) services.PdfService
}

func NewPdfHandler(blobs services.BlobStore, meta services.PdfMetadataStore, outputDir string) PdfHandler {
	return PdfHandler{
		Pdf: func(c *gin.Context) services.PdfService {
			return services.PdfService{
				Blobs:     blobs,
				Meta:      meta,
				OutputDir: outputDir,
				RequestID: middleware.GetRequestID(c),
			}
		},
	}
}

type generateSimpleRequest struct {
	Text string `json:"text"`
}

// POST /api/chatbot/chatbots/generate-pdf
func (h PdfHandler) Generate(c *gin.Context) {
	var req generateSimpleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	path, err := h.Pdf(c).GenerateSimple(c.Request.Context(), req.Text)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "PDF generated successfully", gin.H{"filePath": path})
}

// POST /api/chatbot/chatbots/generate-custom
func (h PdfHandler) GenerateCustom(c *gin.Context) {
	var form services.RequestForm
	if !BindJSONOrError(c, &form) {
		return
	}

	fileID, err := h.Pdf(c).Generate(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "PDF generated and stored successfully", gin.H{"fileId": fileID.Hex()})
}

// GET /api/chatbot/chatbots/generate-pdf/download/:fileId
func (h PdfHandler) Download(c *gin.Context) {
	data, filename, err := h.Pdf(c).Fetch(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// DELETE /api/chatbot/chatbots/generate-pdf/:fileId
func (h PdfHandler) Delete(c *gin.Context) {
	if err := h.Pdf(c).Delete(c.Request.Context(), c.Param("fileId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "PDF deleted successfully", nil)
}
