// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Image persistence kinds. A check-in stores either an object-storage key
// ("stored") or the raw base64 payload ("inline", used when the object store
// write fails). The kind is persisted alongside the value so readers never
// have to sniff the shape.
const (
	ImageKindStored = "stored"
	ImageKindInline = "inline"
)

// SearchPageSize caps participant search results at one page.
const SearchPageSize = 20

// DefaultRecentLimit caps the recent check-ins list when no limit is given.
const DefaultRecentLimit = 10

// Request types

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type CheckInRequest struct {
	ParticipantID string `json:"participant_id"`
	Signature     string `json:"signature"` // base64 image data
	Photo         string `json:"photo"`     // base64 image data
	CheckinBy     string `json:"checkin_by"`
	Note          string `json:"note"`
}

// Response types

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

type CreateEventResponse struct {
	Success  bool     `json:"success"`
	EventID  string   `json:"event_id"`
	Inserted int      `json:"inserted"`
	Errors   []string `json:"errors,omitempty"`
}

type CheckInResponse struct {
	Success bool `json:"success"`
}

type Stats struct {
	Total     int `json:"total"`
	CheckedIn int `json:"checked_in"`
	Remaining int `json:"remaining"`
}

// Domain types

type User struct {
	ID           string `json:"id" db:"id"`
	UserName     string `json:"user_name" db:"user_name"`
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	UpdatedAt    string `json:"updated_at" db:"updated_at"`
}

type Event struct {
	ID               string `json:"id" db:"id"`
	UserID           string `json:"-" db:"user_id"`
	EventName        string `json:"event_name" db:"event_name"`
	EventStartDate   string `json:"event_start_date" db:"event_start_date"`
	ParticipantCount int    `json:"participant_count" db:"participant_count"`
	CreatedAt        string `json:"created_at" db:"created_at"`
	UpdatedAt        string `json:"updated_at" db:"updated_at"`
}

// ParticipantRecord holds the roster columns exactly as imported. The field
// set mirrors the required roster column contract, one field per column.
type ParticipantRecord struct {
	ParticipantID         string `json:"participant_id" db:"participant_id"`
	StartTime             string `json:"start_time" db:"start_time"`
	BibNo                 string `json:"bib_no" db:"bib_no"`
	IDCardPassport        string `json:"id_card_passport" db:"id_card_passport"`
	LastName              string `json:"last_name" db:"last_name"`
	FirstName             string `json:"first_name" db:"first_name"`
	TshirtSize            string `json:"tshirt_size" db:"tshirt_size"`
	BirthdayYear          string `json:"birthday_year" db:"birthday_year"`
	Nationality           string `json:"nationality" db:"nationality"`
	Phone                 string `json:"phone" db:"phone"`
	Email                 string `json:"email" db:"email"`
	EmergencyContactName  string `json:"emergency_contact_name" db:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone" db:"emergency_contact_phone"`
	BloodType             string `json:"blood_type" db:"blood_type"`
	MedicalInformation    string `json:"medical_information" db:"medical_information"`
	MedicinesUsing        string `json:"medicines_using" db:"medicines_using"`
	ParentFullName        string `json:"parent_full_name" db:"parent_full_name"`
	ParentDateOfBirth     string `json:"parent_date_of_birth" db:"parent_date_of_birth"`
	ParentEmail           string `json:"parent_email" db:"parent_email"`
	ParentIDCardPassport  string `json:"parent_id_card_passport" db:"parent_id_card_passport"`
	ParentRelationship    string `json:"parent_relationship" db:"parent_relationship"`
	FullName              string `json:"full_name" db:"full_name"`
	NameOnBib             string `json:"name_on_bib" db:"name_on_bib"`
}

// Participant is a full row. checkin_at is NULL exactly when the participant
// has not been checked in; the check-in UPDATE sets all check-in fields
// together.
type Participant struct {
	ID      string `json:"id" db:"id"`
	EventID string `json:"event_id" db:"event_id"`
	ParticipantRecord

	Signature         string  `json:"signature" db:"signature"`
	SignatureKind     string  `json:"signature_kind" db:"signature_kind"`
	UploadedImage     string  `json:"uploaded_image" db:"uploaded_image"`
	UploadedImageKind string  `json:"uploaded_image_kind" db:"uploaded_image_kind"`
	CheckinAt         *string `json:"checkin_at" db:"checkin_at"`
	CheckinBy         *string `json:"checkin_by" db:"checkin_by"`
	Note              *string `json:"note" db:"note"`
	CreatedAt         string  `json:"created_at" db:"created_at"`
	UpdatedAt         string  `json:"updated_at" db:"updated_at"`
}

// SearchResult is the slim row returned by participant search, carrying the
// fields the check-in list view renders.
type SearchResult struct {
	ID             string  `json:"id" db:"id"`
	BibNo          string  `json:"bib_no" db:"bib_no"`
	FirstName      string  `json:"first_name" db:"first_name"`
	LastName       string  `json:"last_name" db:"last_name"`
	FullName       string  `json:"full_name" db:"full_name"`
	NameOnBib      string  `json:"name_on_bib" db:"name_on_bib"`
	IDCardPassport string  `json:"id_card_passport" db:"id_card_passport"`
	Phone          string  `json:"phone" db:"phone"`
	Email          string  `json:"email" db:"email"`
	CheckinAt      *string `json:"checkin_at" db:"checkin_at"`
	CheckinBy      *string `json:"checkin_by" db:"checkin_by"`
}

// ImportResult reports a roster bulk insert. Structural validation is
// all-or-nothing before any insert; after that, individual row failures
// only land in Errors.
type ImportResult struct {
	Success  bool     `json:"success"`
	Inserted int      `json:"inserted"`
	Errors   []string `json:"errors,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
