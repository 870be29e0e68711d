package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelRequest is a document in the travel_requests collection. Field names
// follow the collection's existing snake_case layout.
type TravelRequest struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	RequestNumber string              `bson:"request_number" json:"request_number"`
	UserID        *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserEmail     string              `bson:"user_email,omitempty" json:"user_email,omitempty"`
	Status        string              `bson:"status" json:"status"`
	Type          string              `bson:"type" json:"type"`
	Purpose       string              `bson:"purpose,omitempty" json:"purpose,omitempty"`
	TotalCost     float64             `bson:"total_cost" json:"total_cost"`
	FlightDetails FlightDetails       `bson:"flight_details" json:"flight_details"`
	HotelDetails  HotelDetails        `bson:"hotel_details" json:"hotel_details"`
	Approval      Approval            `bson:"approval" json:"approval"`
	Documents     []bson.M            `bson:"documents,omitempty" json:"documents,omitempty"`
	Notes         []bson.M            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}

// Approval mirrors the top-level status. The top-level field is authoritative;
// this one is written on every transition but never read back.
type Approval struct {
	Status string `bson:"status" json:"status"`
}

type Airport struct {
	AirportCode string `bson:"airport_code" json:"airport_code"`
	City        string `bson:"city" json:"city"`
	Country     string `bson:"country,omitempty" json:"country,omitempty"`
}

type Flight struct {
	Airline           string    `bson:"airline" json:"airline"`
	FlightNumber      string    `bson:"flight_number" json:"flight_number"`
	CabinClass        string    `bson:"cabin_class" json:"cabin_class"`
	DepartureDatetime time.Time `bson:"departure_datetime" json:"departure_datetime"`
	ArrivalDatetime   time.Time `bson:"arrival_datetime" json:"arrival_datetime"`
	Duration          string    `bson:"duration" json:"duration"`
	Price             float64   `bson:"price" json:"price"`
}

type FlightDetails struct {
	TripType       string   `bson:"trip_type" json:"trip_type"`
	Origin         Airport  `bson:"origin" json:"origin"`
	Destination    Airport  `bson:"destination" json:"destination"`
	OutboundFlight Flight   `bson:"outbound_flight" json:"outbound_flight"`
	Layovers       []bson.M `bson:"layovers,omitempty" json:"layovers,omitempty"`
}

type HotelDetails struct {
	City          string    `bson:"city" json:"city"`
	Country       string    `bson:"country,omitempty" json:"country,omitempty"`
	HotelName     string    `bson:"hotel_name" json:"hotel_name"`
	RoomType      string    `bson:"room_type" json:"room_type"`
	CheckIn       time.Time `bson:"check_in" json:"check_in"`
	CheckOut      time.Time `bson:"check_out" json:"check_out"`
	Nights        int       `bson:"nights" json:"nights"`
	PricePerNight float64   `bson:"price_per_night" json:"price_per_night"`
	TotalPrice    float64   `bson:"total_price" json:"total_price"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Amenities     []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
}
