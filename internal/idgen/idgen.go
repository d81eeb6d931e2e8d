// Package idgen generates short, human-readable booking references backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// AppointmentPrefix is prepended to every booking reference.
const AppointmentPrefix = "APT-"

// Alphabet excludes characters that are easy to misread over the phone.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of random characters generated (excluding the prefix).
const Length = 10

// AppointmentReference returns a new booking reference.
func AppointmentReference() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return AppointmentPrefix + id, nil
}
