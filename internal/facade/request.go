package facade

import "strings"

// RegistroRequest registers a user together with its profile.
type RegistroRequest struct {
	Email           string  `json:"email"           validate:"required,email,max=254"`
	Password        string  `json:"password"        validate:"required"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string  `json:"name"            validate:"notblank,max=100"`
	Surname         string  `json:"surname"         validate:"notblank,max=100"`
	Phone           *string `json:"phone"           validate:"omitempty,max=30"`
	// BirthDate is YYYY-MM-DD; the configured default applies when absent.
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *RegistroRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Phone = trimOptional(r.Phone)
	r.BirthDate = trimOptional(r.BirthDate)
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PerfilRequest creates or replaces a profile. ID is required by updates and
// ignored on creation; UserID is required on creation and ignored by updates.
type PerfilRequest struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	SexID           int64   `json:"sexId"           validate:"required,gt=0"`
	DNI             *string `json:"dni"             validate:"omitempty,max=20"`
	Name            string  `json:"name"            validate:"notblank,max=100"`
	Surname         string  `json:"surname"         validate:"notblank,max=100"`
	BirthDate       string  `json:"birthDate"       validate:"required,datetime=2006-01-02"`
	Email           string  `json:"email"           validate:"required,email,max=254"`
	Phone           *string `json:"phone"           validate:"omitempty,max=30"`
	AddressID       *int64  `json:"addressId"       validate:"omitempty,gt=0"`
	SocialNetworkID *int64  `json:"socialNetworkId" validate:"omitempty,gt=0"`
}

func (r *PerfilRequest) normalize() {
	r.DNI = trimOptional(r.DNI)
	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = trimOptional(r.Phone)
}

// trimOptional trims s and maps blank values to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}
