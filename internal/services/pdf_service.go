package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"
	"voxia/internal/utils"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlobStore abstracts the GridFS bucket so the service can be exercised
// against an in-memory fake.
type BlobStore interface {
	Upload(ctx context.Context, filename string, data []byte) (primitive.ObjectID, error)
	Download(ctx context.Context, id primitive.ObjectID) ([]byte, string, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PdfMetadataStore persists the metadata document written next to each blob.
type PdfMetadataStore interface {
	Insert(ctx context.Context, md models.PdfMetadata) (models.PdfMetadata, error)
	DeleteByFileID(ctx context.Context, fileID primitive.ObjectID) error
}

// RequestForm is the structured data the chatbot collects for one travel
// request form.
type RequestForm struct {
	BasicInfo BasicInfo                `json:"basicInfo"`
	Flight    models.PdfFlightSnapshot `json:"flight"`
	Hotel     models.PdfHotelSnapshot  `json:"hotel"`
}

type BasicInfo struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeId"`
	PhoneNum   string `json:"phoneNum"`
}

// PdfService renders travel request forms and manages their blob lifecycle.
type PdfService struct {
	Blobs     BlobStore
	Meta      PdfMetadataStore
	OutputDir string
	RequestID string
	Now       func() time.Time
}

func (s PdfService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate renders the request form, uploads it to the bucket and writes the
// metadata document. When the metadata write fails the uploaded blob is
// removed again, so either both exist or neither does.
func (s PdfService) Generate(ctx context.Context, form RequestForm) (primitive.ObjectID, error) {
	if strings.TrimSpace(form.BasicInfo.Username) == "" {
		return primitive.NilObjectID, domain.ValidationError{Field: "basicInfo.username", Msg: "required"}
	}

	data, err := buildRequestFormPDF(form)
	if err != nil {
		return primitive.NilObjectID, err
	}

	filename := fmt.Sprintf("request_form_%s.pdf", uuid.NewString())
	fileID, err := s.Blobs.Upload(ctx, filename, data)
	if err != nil {
		return primitive.NilObjectID, err
	}

	md := models.PdfMetadata{
		FileID:        fileID,
		Username:      form.BasicInfo.Username,
		Email:         form.BasicInfo.Email,
		Department:    form.BasicInfo.Department,
		EmployeeID:    form.BasicInfo.EmployeeID,
		PhoneNum:      form.BasicInfo.PhoneNum,
		FlightDetails: form.Flight,
		HotelDetails:  form.Hotel,
		CreatedAt:     s.now(),
	}
	if _, err := s.Meta.Insert(ctx, md); err != nil {
		if derr := s.Blobs.Delete(ctx, fileID); derr != nil {
			utils.LogError(s.RequestID, "pdf", "cleanup_blob", derr)
		}
		return primitive.NilObjectID, err
	}

	utils.LogEvent(s.RequestID, "pdf", "generate", fmt.Sprintf("file_id=%s", fileID.Hex()))
	return fileID, nil
}

// GenerateSimple writes a minimal PDF to the local output directory and
// returns its path.
func (s PdfService) GenerateSimple(ctx context.Context, text string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Generated PDF", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Generated PDF", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	if strings.TrimSpace(text) == "" {
		text = "Hello, this is your generated PDF!"
	}
	pdf.MultiCell(0, 7, text, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", domain.RenderError{Doc: "generated pdf", Err: err}
	}

	dir := s.OutputDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "generated_report.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", domain.StorageError{Op: "write pdf file", Err: err}
	}

	utils.LogEvent(s.RequestID, "pdf", "generate_simple", path)
	return path, nil
}

// Fetch loads the full blob plus its stored filename.
func (s PdfService) Fetch(ctx context.Context, rawID string) ([]byte, string, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(rawID))
	if err != nil {
		return nil, "", domain.InvalidIDError{ID: rawID, Err: err}
	}
	data, name, err := s.Blobs.Download(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		name = fmt.Sprintf("%s.pdf", id.Hex())
	}
	return data, name, nil
}

// Delete removes the blob and its metadata document.
func (s PdfService) Delete(ctx context.Context, rawID string) error {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(rawID))
	if err != nil {
		return domain.InvalidIDError{ID: rawID, Err: err}
	}
	if err := s.Blobs.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Meta.DeleteByFileID(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "pdf", "delete", fmt.Sprintf("file_id=%s", id.Hex()))
	return nil
}

func buildRequestFormPDF(form RequestForm) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Request Form", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Travel Request Form", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, title, "B", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, safe(value, "-"), "", 1, "L", false, 0, "")
	}

	section("Employee")
	row("Name", form.BasicInfo.Username)
	row("Email", form.BasicInfo.Email)
	row("Department", form.BasicInfo.Department)
	row("Employee ID", form.BasicInfo.EmployeeID)
	row("Phone", form.BasicInfo.PhoneNum)
	pdf.Ln(4)

	section("Flight")
	row("Airline", form.Flight.AirlineName)
	row("Flight", form.Flight.FlightCode)
	row("Route", safe(form.Flight.Origin, "-")+" -> "+safe(form.Flight.Destination, "-"))
	row("Trip type", form.Flight.TripType)
	row("Cabin class", form.Flight.CabinClass)
	row("Departure", form.Flight.DepartureDate)
	row("Return", form.Flight.ReturnDate)
	row("Price", form.Flight.FlightPrice)
	pdf.Ln(4)

	section("Hotel")
	row("Hotel", form.Hotel.HotelName)
	row("City", form.Hotel.City)
	row("Room", form.Hotel.RoomCategory)
	row("Check-in", form.Hotel.CheckInDate)
	row("Check-out", form.Hotel.CheckOutDate)
	row("Rating", form.Hotel.HotelRating)
	row("Price", form.Hotel.HotelPrice)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Generated on "+time.Now().Format("2006-01-02 15:04")+". Submit this form to your supervisor for approval.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.RenderError{Doc: "request form", Err: err}
	}
	return buf.Bytes(), nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
