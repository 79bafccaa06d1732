// Package saidnum validates South African ID numbers and extracts the
// metadata they encode (date of birth, gender, citizenship). Passport
// numbers are accepted as-is with no extractable metadata.
package saidnum

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFormat    = errors.New("id number must be 13 digits or a 6-9 character passport number")
	ErrInvalidDate      = errors.New("id number encodes an invalid date of birth")
	ErrUnderage         = errors.New("id number belongs to a person under 16")
	ErrChecksumMismatch = errors.New("id number checksum is invalid")
)

// Gender as encoded in digits 6-9 of the ID number.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

const minimumAgeYears = 16

var (
	passportPattern = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	idPattern       = regexp.MustCompile(`^[0-9]{13}$`)
)

// Result is the outcome of validating an ID or passport number.
// On a checksum mismatch the extracted DateOfBirth, Gender and Citizen fields
// are still populated, since they are derivable independently of the checksum.
type Result struct {
	Valid       bool
	Passport    bool
	DateOfBirth *time.Time
	Gender      Gender
	Citizen     *bool
	Err         error
}

// Validate checks raw against the server's current local date.
func Validate(raw string) Result {
	return ValidateAt(raw, time.Now())
}

// ValidateAt checks raw as of the given reference time. The reference time
// drives century inference and the minimum-age rule.
func ValidateAt(raw string, now time.Time) Result {
	cleaned := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(raw))

	if passportPattern.MatchString(cleaned) && !idPattern.MatchString(cleaned) {
		return Result{Valid: true, Passport: true}
	}
	if !idPattern.MatchString(cleaned) {
		return Result{Err: ErrInvalidFormat}
	}

	dob, err := decodeBirthDate(cleaned, now)
	if err != nil {
		return Result{Err: err}
	}

	res := Result{DateOfBirth: &dob}

	genderValue, _ := strconv.Atoi(cleaned[6:10])
	if genderValue < 5000 {
		res.Gender = GenderFemale
	} else {
		res.Gender = GenderMale
	}

	citizen := cleaned[10] == '0'
	res.Citizen = &citizen

	if ageInYears(dob, now) < minimumAgeYears {
		res.Err = ErrUnderage
		return res
	}

	if !checksumValid(cleaned) {
		res.Err = ErrChecksumMismatch
		return res
	}

	res.Valid = true
	return res
}

// decodeBirthDate parses the YYMMDD prefix. The century is the nearest one
// that does not place the birth year in the future relative to now.
func decodeBirthDate(id string, now time.Time) (time.Time, error) {
	yy, _ := strconv.Atoi(id[0:2])
	month, _ := strconv.Atoi(id[2:4])
	day, _ := strconv.Atoi(id[4:6])

	year := (now.Year()/100)*100 + yy
	if year > now.Year() {
		year -= 100
	}

	dob := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2), so round-trip the
	// components to catch impossible calendar dates.
	if dob.Year() != year || dob.Month() != time.Month(month) || dob.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return dob, nil
}

// ageInYears uses average-year-length division, matching how the original
// enrolment checks computed age.
func ageInYears(dob, now time.Time) int {
	const yearHours = 365.25 * 24
	return int(now.Sub(dob).Hours() / yearHours)
}

// checksumValid applies the Luhn variant used by SA ID numbers: walking
// right-to-left over the first 12 digits, every second digit starting with
// the rightmost is doubled (minus 9 when the double exceeds 9), and the
// check digit must bring the sum to a multiple of 10.
func checksumValid(id string) bool {
	sum := 0
	for i := 11; i >= 0; i-- {
		d := int(id[i] - '0')
		if (11-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	expected := (10 - sum%10) % 10
	return expected == int(id[12]-'0')
}
