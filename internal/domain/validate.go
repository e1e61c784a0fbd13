package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateText trims v and rejects it when empty.
func ValidateText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	return v, nil
}

func ValidateEmail(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if !emailRe.MatchString(v) {
		return "", &ValidationError{Field: field, Reason: "invalid email format"}
	}
	return v, nil
}

// ValidatePhone accepts exactly ten ASCII digits.
func ValidatePhone(v string) (string, error) {
	v = strings.TrimSpace(v)
	if len(v) != 10 {
		return "", &ValidationError{Field: "phone", Reason: "must be 10 digits"}
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return "", &ValidationError{Field: "phone", Reason: "must be 10 digits"}
		}
	}
	return v, nil
}

func ValidateRooms(n int) error {
	if n < 0 {
		return &ValidationError{Field: "total_rooms", Reason: "must be a non-negative integer"}
	}
	return nil
}

// ParseRooms parses a room count typed by the user.
func ParseRooms(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &ValidationError{Field: "total_rooms", Reason: "must be a non-negative integer"}
	}
	if err := ValidateRooms(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (in HotelInput) Validate() (HotelInput, error) {
	var err error
	if in.Name, err = ValidateText("name", in.Name); err != nil {
		return in, err
	}
	if in.Location, err = ValidateText("location", in.Location); err != nil {
		return in, err
	}
	if err = ValidateRooms(in.TotalRooms); err != nil {
		return in, err
	}
	if in.Email, err = ValidateEmail("email", in.Email); err != nil {
		return in, err
	}
	return in, nil
}

func (in CustomerInput) Validate() (CustomerInput, error) {
	var err error
	if in.Name, err = ValidateText("name", in.Name); err != nil {
		return in, err
	}
	if in.Phone, err = ValidatePhone(in.Phone); err != nil {
		return in, err
	}
	if strings.TrimSpace(in.Email) != "" {
		if in.Email, err = ValidateEmail("email", in.Email); err != nil {
			return in, err
		}
	} else {
		in.Email = ""
	}
	return in, nil
}
