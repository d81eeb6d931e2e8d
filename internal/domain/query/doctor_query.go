// Package query evaluates directory searches over an in-memory doctor list.
// Nothing here performs I/O or mutates its input.
package query

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go-doctor-directory/internal/domain/entity"
)

// leadingNumber matches the numeric prefix of a distance such as "2.3 mi".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Evaluate filters records by every active predicate of filter and returns
// the survivors in a new slice, stably sorted by filter.SortBy.
func Evaluate(records []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(records))
	for _, doctor := range records {
		if Matches(doctor, filter) {
			result = append(result, doctor)
		}
	}

	key := filter.SortBy.OrDefault()
	sort.SliceStable(result, func(i, j int) bool {
		return Less(result[i], result[j], key)
	})

	return result
}

// Matches reports whether doctor satisfies all active predicates of filter.
func Matches(doctor entity.Doctor, filter entity.DoctorFilter) bool {
	if filter.SearchText != "" {
		needle := strings.ToLower(filter.SearchText)
		if !strings.Contains(strings.ToLower(doctor.Name), needle) &&
			!strings.Contains(strings.ToLower(doctor.Specialty), needle) {
			return false
		}
	}

	if filter.HasSpecialty() && doctor.Specialty != filter.Specialty {
		return false
	}

	if filter.Availability != "" && doctor.Availability != filter.Availability {
		return false
	}

	return true
}

// Less orders a before b for the given sort key. Unknown keys order by
// distance.
func Less(a, b entity.Doctor, key entity.SortKey) bool {
	switch key {
	case entity.SortByRating:
		return a.Rating > b.Rating
	case entity.SortByExperience:
		return a.Experience > b.Experience
	case entity.SortByFee:
		return a.ConsultationFee.LessThan(b.ConsultationFee)
	case entity.SortByAvailability:
		return a.Availability.Rank() < b.Availability.Rank()
	default:
		return ParseDistance(a.Distance) < ParseDistance(b.Distance)
	}
}

// ParseDistance returns the leading numeric magnitude of text, ignoring
// leading whitespace and any trailing unit. Text without a numeric prefix
// yields +Inf so it sorts after every measurable distance.
func ParseDistance(text string) float64 {
	match := leadingNumber.FindString(strings.TrimLeftFunc(text, isLeadingSpace))
	if match == "" {
		return math.Inf(1)
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(value) {
		return math.Inf(1)
	}
	return value
}

// isLeadingSpace matches the Unicode white space skipped before a number,
// including the byte order mark.
func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Summarize counts the doctors, the ones available now and the patients
// queued across them.
func Summarize(doctors []entity.Doctor) entity.DirectoryStats {
	stats := entity.DirectoryStats{DoctorsFound: len(doctors)}
	for _, doctor := range doctors {
		if doctor.IsAvailable() {
			stats.AvailableNow++
		}
		stats.PatientsInQueue += doctor.CurrentPatients
	}
	return stats
}
