package entity

// AllSpecialties is the specialty value meaning "no specialty filter"
const AllSpecialties = "All Specialties"

// SortKey selects the ordering of directory results
type SortKey string

const (
	SortByDistance     SortKey = "distance"
	SortByRating       SortKey = "rating"
	SortByExperience   SortKey = "experience"
	SortByFee          SortKey = "fee"
	SortByAvailability SortKey = "availability"
)

// OrDefault returns the key itself when known, otherwise SortByDistance
func (k SortKey) OrDefault() SortKey {
	switch k {
	case SortByRating, SortByExperience, SortByFee, SortByAvailability:
		return k
	default:
		return SortByDistance
	}
}

// DefaultSpecialties is the specialty list offered by the directory,
// sentinel first.
var DefaultSpecialties = []string{
	AllSpecialties,
	"General Medicine",
	"Cardiology",
	"Dermatology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
	"Surgery",
}

// DoctorFilter is a domain-level filter for querying the directory.
// Passed by value; zero-value fields mean "no filter".
type DoctorFilter struct {
	SearchText   string       // Case-insensitive substring of name or specialty
	Specialty    string       // Exact specialty, empty or AllSpecialties for any
	Availability Availability // Exact availability, empty for any
	SortBy       SortKey      // Unknown or empty sorts by distance
}

// DefaultDoctorFilter returns the cleared filter state
func DefaultDoctorFilter() DoctorFilter {
	return DoctorFilter{
		Specialty: AllSpecialties,
		SortBy:    SortByDistance,
	}
}

// HasSpecialty reports whether the specialty predicate is active
func (f DoctorFilter) HasSpecialty() bool {
	return f.Specialty != "" && f.Specialty != AllSpecialties
}

// HasActiveFilters reports whether the filter differs from the cleared state
func (f DoctorFilter) HasActiveFilters() bool {
	return f.SearchText != "" ||
		f.HasSpecialty() ||
		f.Availability != "" ||
		f.SortBy.OrDefault() != SortByDistance
}
