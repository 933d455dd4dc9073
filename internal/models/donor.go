package models

import "time"

type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

func (b BloodType) Valid() bool {
	switch b {
	case BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg,
		BloodTypeABPos, BloodTypeABNeg, BloodTypeOPos, BloodTypeONeg:
		return true
	}
	return false
}

const (
	DonorMinAge = 18
	DonorMaxAge = 65
)

type Donor struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Age              int        `json:"age"`
	BloodType        BloodType  `json:"blood_type"`
	LastDonationDate *time.Time `json:"last_donation_date"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
