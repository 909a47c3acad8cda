package domain

import (
	"strings"
	"time"

	"registry/pkg/serrors"
)

// PerfilID identifies a profile.
type PerfilID int64

// SexID references the sex catalog.
type SexID int64

// PerfilFields carries the mutable data of a profile. It is the input of
// NewPerfilUsuario and the output of PerfilUsuario.Fields.
type PerfilFields struct {
	UserID          UsuarioID
	SexID           SexID
	DNI             *string
	Name            string
	Surname         string
	BirthDate       time.Time
	Email           Email
	Phone           *string
	AddressID       *int64
	SocialNetworkID *int64
	PhotoImageID    *ImageID
	// AsOf is the day birth dates are checked against. The current UTC day
	// is used when zero. It is never stored.
	AsOf time.Time
}

// Today truncates t to its UTC calendar day.
func Today(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PerfilUsuario is the personal profile of a user (1:1).
type PerfilUsuario struct {
	id        PerfilID
	fields    PerfilFields
	verified  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewPerfilUsuario validates f and builds an unsaved profile. Every violated
// rule is reported, not just the first one.
func NewPerfilUsuario(f PerfilFields) (*PerfilUsuario, error) {
	p := &PerfilUsuario{}
	if err := p.Replace(f); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePerfilUsuario rebuilds a persisted profile. It is meant for storage adapters.
func RestorePerfilUsuario(id PerfilID, f PerfilFields, verified bool, createdAt, updatedAt time.Time) *PerfilUsuario {
	return &PerfilUsuario{
		id:        id,
		fields:    f,
		verified:  verified,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ValidationErrors is returned when more than one field is invalid.
type ValidationErrors []*serrors.Error

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}

	return strings.Join(msgs, "; ")
}

// Is classifies ValidationErrors as ErrValidation.
func (v ValidationErrors) Is(target error) bool { return target == serrors.ErrValidation }

// Replace overwrites every mutable field after validating all of them. On
// error the profile is left untouched.
func (p *PerfilUsuario) Replace(f PerfilFields) error {
	var next PerfilUsuario
	next.fields.UserID = f.UserID
	next.SetAddressID(f.AddressID)
	next.SetSocialNetworkID(f.SocialNetworkID)
	if f.PhotoImageID != nil {
		id := *f.PhotoImageID
		next.fields.PhotoImageID = &id
	}

	var errs ValidationErrors
	collect := func(err error) {
		if err == nil {
			return
		}
		if se, ok := serrors.Details(err); ok {
			errs = append(errs, se)

			return
		}
		errs = append(errs, serrors.Wrap(serrors.ErrValidation, err, "invalid value"))
	}

	if f.UserID <= 0 {
		collect(serrors.Invalid(serrors.ErrValidation, "userId", "user is required"))
	}
	collect(next.SetSexID(f.SexID))
	collect(next.SetName(f.Name))
	collect(next.SetSurname(f.Surname))
	collect(next.SetBirthDate(f.BirthDate, f.AsOf))
	collect(next.SetEmail(f.Email))
	next.SetDNI(f.DNI)
	next.SetPhone(f.Phone)

	switch len(errs) {
	case 0:
		p.fields = next.fields

		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

func (p *PerfilUsuario) ID() PerfilID         { return p.id }
func (p *PerfilUsuario) UserID() UsuarioID    { return p.fields.UserID }
func (p *PerfilUsuario) SexID() SexID         { return p.fields.SexID }
func (p *PerfilUsuario) Name() string         { return p.fields.Name }
func (p *PerfilUsuario) Surname() string      { return p.fields.Surname }
func (p *PerfilUsuario) BirthDate() time.Time { return p.fields.BirthDate }
func (p *PerfilUsuario) Email() Email         { return p.fields.Email }
func (p *PerfilUsuario) Verified() bool       { return p.verified }
func (p *PerfilUsuario) CreatedAt() time.Time { return p.createdAt }
func (p *PerfilUsuario) UpdatedAt() time.Time { return p.updatedAt }
func (p *PerfilUsuario) DNI() *string         { return cloneString(p.fields.DNI) }
func (p *PerfilUsuario) Phone() *string       { return cloneString(p.fields.Phone) }
func (p *PerfilUsuario) PhotoImageID() *ImageID {
	if p.fields.PhotoImageID == nil {
		return nil
	}
	id := *p.fields.PhotoImageID

	return &id
}

// Fields returns a copy of the mutable data.
func (p *PerfilUsuario) Fields() PerfilFields {
	f := p.fields
	f.DNI = cloneString(f.DNI)
	f.Phone = cloneString(f.Phone)
	f.AddressID = cloneInt64(f.AddressID)
	f.SocialNetworkID = cloneInt64(f.SocialNetworkID)
	f.PhotoImageID = p.PhotoImageID()

	return f
}

// SetSexID sets the sex catalog reference.
func (p *PerfilUsuario) SetSexID(id SexID) error {
	if id <= 0 {
		return serrors.Invalid(serrors.ErrValidation, "sexId", "sex is required")
	}
	p.fields.SexID = id

	return nil
}

// SetName sets the first name.
func (p *PerfilUsuario) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return serrors.Invalid(serrors.ErrValidation, "name", "name is required")
	}
	p.fields.Name = name

	return nil
}

// SetSurname sets the last name.
func (p *PerfilUsuario) SetSurname(surname string) error {
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return serrors.Invalid(serrors.ErrValidation, "surname", "surname is required")
	}
	p.fields.Surname = surname

	return nil
}

// SetBirthDate sets the birth date, truncated to a calendar day. Dates after
// asOf are rejected; a zero asOf means the current UTC day.
func (p *PerfilUsuario) SetBirthDate(d, asOf time.Time) error {
	if d.IsZero() {
		return serrors.Invalid(serrors.ErrValidation, "birthDate", "birth date is required")
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(Today(asOf)) {
		return serrors.Invalid(serrors.ErrValidation, "birthDate", "birth date cannot be in the future")
	}
	p.fields.BirthDate = day

	return nil
}

// SetEmail sets the contact e-mail.
func (p *PerfilUsuario) SetEmail(e Email) error {
	if e.IsZero() {
		return serrors.Invalid(serrors.ErrValidation, "email", "email is required")
	}
	p.fields.Email = e

	return nil
}

// SetDNI sets the national id. A nil or blank value means "no DNI".
func (p *PerfilUsuario) SetDNI(dni *string) { p.fields.DNI = normalizeOptional(dni) }

// SetPhone sets the phone number. A nil or blank value means "no phone".
func (p *PerfilUsuario) SetPhone(phone *string) { p.fields.Phone = normalizeOptional(phone) }

// SetAddressID sets the optional address reference.
func (p *PerfilUsuario) SetAddressID(id *int64) { p.fields.AddressID = cloneInt64(id) }

// SetSocialNetworkID sets the optional social network reference.
func (p *PerfilUsuario) SetSocialNetworkID(id *int64) { p.fields.SocialNetworkID = cloneInt64(id) }

// SetPhoto points the profile at a persisted image. A zero id is rejected;
// use ClearPhoto to drop the reference.
func (p *PerfilUsuario) SetPhoto(id ImageID) error {
	if id <= 0 {
		return serrors.With(serrors.ErrIllegalArgument, "photo image id must reference a persisted image")
	}
	p.fields.PhotoImageID = &id

	return nil
}

// ClearPhoto drops the photo reference.
func (p *PerfilUsuario) ClearPhoto() { p.fields.PhotoImageID = nil }

// MarkVerified flips the verified flag. There is no way back.
func (p *PerfilUsuario) MarkVerified() { p.verified = true }

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

func cloneInt64(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i

	return &v
}
