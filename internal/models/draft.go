package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Draft is the transient form state for a guest that has not been added yet.
// Age 0 means "unset". Hobbies is kept as the raw comma-separated text until
// the draft is committed.
type Draft struct {
	Name    string
	Age     int
	Major   bool
	Hobbies string
}

// SetName updates the name field.
func (d *Draft) SetName(name string) { d.Name = name }

// SetAge updates the age field.
func (d *Draft) SetAge(age int) { d.Age = age }

// SetAgeText updates the age from numeric form input.
// Empty input resets the age to unset; anything that is not an integer is
// rejected and leaves the draft unchanged.
func (d *Draft) SetAgeText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		d.Age = 0
		return nil
	}
	age, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid age %q: %w", text, err)
	}
	d.Age = age
	return nil
}

// SetMajor updates the adult checkbox.
func (d *Draft) SetMajor(major bool) { d.Major = major }

// SetHobbies updates the raw comma-separated hobby text.
func (d *Draft) SetHobbies(hobbies string) { d.Hobbies = hobbies }

// Reset clears every field, as the form does after a successful add.
func (d *Draft) Reset() { *d = Draft{} }
