package handlers

import (
	"net/http"

	"voxia/internal/http/middleware"
	"voxia/internal/services"

	"github.com/gin-gonic/gin"
)

// EmailHandler sends templated mail with attachments from the blob bucket.
type EmailHandler struct {
	Email func(c *gin.Context) services.EmailService
}

func NewEmailHandler(blobs services.BlobStore, sender services.MailSender, from string) EmailHandler {
	return EmailHandler{
		Email: func(c *gin.Context) services.EmailService {
			return services.EmailService{
				Blobs:     blobs,
				Sender:    sender,
				From:      from,
				RequestID: middleware.GetRequestID(c),
			}
		},
	}
}

type sendEmailWithPdfRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
	FileID  string `json:"fileId" binding:"required"`
}

// POST /api/email/sendEmailWithPdf
func (h EmailHandler) SendWithPdf(c *gin.Context) {
	var req sendEmailWithPdfRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	err := h.Email(c).SendWithPdf(c.Request.Context(), req.To, req.Subject, req.Text, req.HTML, req.FileID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Email with PDF sent successfully", nil)
}
