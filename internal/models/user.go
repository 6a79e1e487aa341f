package models

import (
	"encoding/json"
	"time"
)

// User is a registered account. The plaintext password never reaches this struct,
// only its bcrypt hash.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Pseudo       string    `gorm:"size:25;not null;uniqueIndex" json:"pseudo"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Don't return password in JSON
	Country      Country   `gorm:"size:32;not null" json:"country"`
	BirthDate    time.Time `gorm:"type:date;not null" json:"birthDate"`
	NumTel       string    `gorm:"size:20;not null" json:"numTel"`
}

// MarshalJSON writes birthDate as YYYY-MM-DD, the format UserInput accepts,
// so a fetched user can be sent back unchanged.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		BirthDate string `json:"birthDate"`
	}{plain: plain(u), BirthDate: u.BirthDate.Format(time.DateOnly)})
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		BirthDate string `json:"birthDate"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.BirthDate = time.Time{}
	if aux.BirthDate == "" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, aux.BirthDate)
	if err != nil {
		return err
	}
	u.BirthDate = date
	return nil
}

// Country is one of the countries accounts can register from.
type Country string

const (
	CountryFrance   Country = "France"
	CountryBelgique Country = "Belgique"
	CountrySuisse   Country = "Suisse"
	CountryCorse    Country = "Corse"
)

// CallingCodes maps every supported country to its international phone prefix.
var CallingCodes = map[Country]string{
	CountryFrance:   "+33",
	CountryBelgique: "+32",
	CountrySuisse:   "+41",
	CountryCorse:    "+33",
}

// Valid reports whether c is a supported country.
func (c Country) Valid() bool {
	_, ok := CallingCodes[c]
	return ok
}
