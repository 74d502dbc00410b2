package partner

import (
	"fmt"
	"strings"
)

type Availability string

const (
	Open   Availability = "OPEN"
	Closed Availability = "CLOSED"
	Busy   Availability = "BUSY"
)

func ParseAvailability(s string) (Availability, error) {
	switch a := Availability(s); a {
	case Open, Closed, Busy:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAvailability, s)
}

// User is the dashboard account. PartnerID links it to the restaurant.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	PartnerID string `json:"partnerId"`
}

type Profile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Province     string       `json:"province"`
	Availability Availability `json:"availability"`
	PhotoURL     string       `json:"photoUrl,omitempty"`
	BannerURL    string       `json:"bannerUrl,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
}

// ProfileUpdate payload to edit the restaurant profile. Omitted fields are
// left unchanged.
// swagger:model ProfileUpdate
type ProfileUpdate struct {
	Name         *string       `json:"name,omitempty" example:"Casa do Frango"`
	Description  *string       `json:"description,omitempty"`
	Phone        *string       `json:"phone,omitempty" example:"841234567"`
	Address      *string       `json:"address,omitempty"`
	City         *string       `json:"city,omitempty" example:"Maputo"`
	Province     *string       `json:"province,omitempty"`
	Availability *Availability `json:"availability,omitempty" swaggertype:"string" example:"OPEN"`
	Latitude     *float64      `json:"latitude,omitempty"`
	Longitude    *float64      `json:"longitude,omitempty"`
}

// Validate rejects blank required fields, unknown availabilities and
// coordinates off the globe.
func (u ProfileUpdate) Validate() error {
	for field, v := range map[string]*string{"name": u.Name, "phone": u.Phone, "address": u.Address, "city": u.City} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return fmt.Errorf("%w: %s must not be blank", ErrInvalidProfile, field)
		}
	}
	if u.Availability != nil {
		if _, err := ParseAvailability(string(*u.Availability)); err != nil {
			return err
		}
	}
	if u.Latitude != nil && (*u.Latitude < -90 || *u.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidProfile)
	}
	if u.Longitude != nil && (*u.Longitude < -180 || *u.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidProfile)
	}
	return nil
}

// AvailabilityRequest payload to open, close or pause the restaurant.
// swagger:model AvailabilityRequest
type AvailabilityRequest struct {
	Availability string `json:"availability" example:"OPEN"`
}

type userResponse struct {
	User User `json:"user"`
}

type profileResponse struct {
	Partner Profile `json:"partner"`
}
