package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PdfMetadata records a generated request form stored in the GridFS bucket.
// Written once after a successful blob upload, never updated.
type PdfMetadata struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FileID        primitive.ObjectID `bson:"fileId" json:"fileId"`
	Username      string             `bson:"username" json:"username"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Department    string             `bson:"department,omitempty" json:"department,omitempty"`
	EmployeeID    string             `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	PhoneNum      string             `bson:"phoneNum,omitempty" json:"phoneNum,omitempty"`
	FlightDetails PdfFlightSnapshot  `bson:"flightDetails" json:"flightDetails"`
	HotelDetails  PdfHotelSnapshot   `bson:"hotelDetails" json:"hotelDetails"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PdfFlightSnapshot keeps the chatbot's string-typed flight fields as
// collected, without re-parsing them into dates or numbers.
type PdfFlightSnapshot struct {
	AirlineName   string `bson:"airLineName,omitempty" json:"airLineName,omitempty"`
	Origin        string `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination   string `bson:"destination,omitempty" json:"destination,omitempty"`
	DepartureDate string `bson:"departureDate,omitempty" json:"departureDate,omitempty"`
	ReturnDate    string `bson:"returnDate,omitempty" json:"returnDate,omitempty"`
	TripType      string `bson:"tripType,omitempty" json:"tripType,omitempty"`
	CabinClass    string `bson:"cabinClass,omitempty" json:"cabinClass,omitempty"`
	FlightCode    string `bson:"flightCode,omitempty" json:"flightCode,omitempty"`
	FlightPrice   string `bson:"flightPrice,omitempty" json:"flightPrice,omitempty"`
}

type PdfHotelSnapshot struct {
	HotelName    string `bson:"hotelName,omitempty" json:"hotelName,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	CheckInDate  string `bson:"check_in_date,omitempty" json:"check_in_date,omitempty"`
	CheckOutDate string `bson:"check_out_date,omitempty" json:"check_out_date,omitempty"`
	HotelRating  string `bson:"hotelRating,omitempty" json:"hotelRating,omitempty"`
	RoomCategory string `bson:"roomCategory,omitempty" json:"roomCategory,omitempty"`
	HotelPrice   string `bson:"hotelPrice,omitempty" json:"hotelPrice,omitempty"`
}
