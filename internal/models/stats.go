package models

type Statistics struct {
	TotalDonors      int `json:"total_donors"`
	ActiveHospitals  int `json:"active_hospitals"`
	ApprovedRequests int `json:"approved_requests"`
	PendingRequests  int `json:"pending_requests"`
}

type RecentActivity struct {
	RecentDonors   []Donor        `json:"recent_donors"`
	RecentRequests []BloodRequest `json:"recent_requests"`
}
