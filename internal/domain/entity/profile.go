package entity

// PersonalInfo is the resident's profile record, stored under its own key.
type PersonalInfo struct {
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	IDNumber    string `json:"idNumber,omitempty"`
}
