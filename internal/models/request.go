package models

import "time"

type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type BloodRequest struct {
	ID            string        `json:"id"`
	HospitalName  string        `json:"hospital_name"`
	BloodType     BloodType     `json:"blood_type"`
	Units         int           `json:"units"`
	Urgency       Urgency       `json:"urgency"`
	Reason        string        `json:"reason"`
	ContactPerson string        `json:"contact_person"`
	Phone         string        `json:"phone"`
	Status        RequestStatus `json:"status"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
