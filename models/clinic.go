package models

// Clinic is the subset of the clinic profile document the availability engine reads.
type Clinic struct {
	ID              string             `bson:"id" json:"id"`
	Role            string             `bson:"role" json:"role"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	ClinicName      string             `bson:"clinicName,omitempty" json:"clinicName,omitempty"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	TokenHash       string             `bson:"token_hash,omitempty" json:"-"`
	FCMToken        string             `bson:"fcmToken,omitempty" json:"-"`
	ServicesOffered []ClinicService    `bson:"servicesOffered,omitempty" json:"servicesOffered,omitempty"`
	Availability    WorkingHoursConfig `bson:"availability,omitempty" json:"availability"`
}

// DisplayName prefers the clinic's trading name.
func (c Clinic) DisplayName() string {
	if c.ClinicName != "" {
		return c.ClinicName
	}
	return c.Name
}

// Service returns the offered service with the given ID.
func (c Clinic) Service(serviceID string) (ClinicService, bool) {
	for _, s := range c.ServicesOffered {
		if s.ID == serviceID {
			return s, true
		}
	}
	return ClinicService{}, false
}

// ClinicService is an entry of the clinic's service catalogue.
type ClinicService struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name,omitempty" json:"name,omitempty"`
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
}

const RoleClinic = "clinic"
const RoleOwner = "owner"
