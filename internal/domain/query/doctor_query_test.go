package query

import (
	"math"
	"testing"

	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctor(id, name, specialty, distance string, rating float64) entity.Doctor {
	return entity.Doctor{
		ID:              id,
		Name:            name,
		Specialty:       specialty,
		Distance:        distance,
		Rating:          rating,
		Availability:    entity.AvailabilityAvailable,
		ConsultationFee: decimal.NewFromInt(100),
	}
}

func ids(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID
	}
	return out
}

func aliceAndBob() []entity.Doctor {
	return []entity.Doctor{
		doctor("A", "Alice", "Cardiology", "2.0 mi", 4.8),
		doctor("B", "Bob", "Cardiology", "1.0 mi", 4.2),
	}
}

func sampleDirectory() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Sarah Johnson", Specialty: "Cardiology", Experience: 15, Rating: 4.9, Distance: "0.8 mi",
			Availability: entity.AvailabilityAvailable, ConsultationFee: decimal.NewFromInt(150), CurrentPatients: 3},
		{ID: "2", Name: "Michael Chen", Specialty: "Neurology", Experience: 12, Rating: 4.8, Distance: "1.2 mi",
			Availability: entity.AvailabilityBusy, ConsultationFee: decimal.NewFromInt(180), CurrentPatients: 8},
		{ID: "3", Name: "Emily Rodriguez", Specialty: "Pediatrics", Experience: 8, Rating: 4.9, Distance: "2.1 mi",
			Availability: entity.AvailabilityAvailable, ConsultationFee: decimal.NewFromInt(120), CurrentPatients: 2},
		{ID: "4", Name: "David Williams", Specialty: "Orthopedics", Experience: 20, Rating: 4.7, Distance: "3.5 mi",
			Availability: entity.AvailabilityOffline, ConsultationFee: decimal.RequireFromString("200.50"), CurrentPatients: 0},
		{ID: "5", Name: "Lisa Thompson", Specialty: "Dermatology", Experience: 10, Rating: 4.6, Distance: "1.8 mi",
			Availability: entity.AvailabilityBusy, ConsultationFee: decimal.NewFromInt(130), CurrentPatients: 5},
		{ID: "6", Name: "James Cardwell", Specialty: "General Medicine", Experience: 12, Rating: 4.5, Distance: "unknown",
			Availability: entity.AvailabilityAvailable, ConsultationFee: decimal.NewFromInt(120), CurrentPatients: 1},
	}
}

func TestEvaluate_DefaultSortsByDistance(t *testing.T) {
	result := Evaluate(aliceAndBob(), entity.DefaultDoctorFilter())
	assert.Equal(t, []string{"B", "A"}, ids(result))
}

func TestEvaluate_SortByRating(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.SortBy = entity.SortByRating

	result := Evaluate(aliceAndBob(), filter)
	assert.Equal(t, []string{"A", "B"}, ids(result))
}

func TestEvaluate_SearchIsCaseInsensitive(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.SearchText = "bob"

	result := Evaluate(aliceAndBob(), filter)
	assert.Equal(t, []string{"B"}, ids(result))
}

func TestEvaluate_SearchMatchesSpecialty(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.SearchText = "NEURO"

	result := Evaluate(sampleDirectory(), filter)
	assert.Equal(t, []string{"2"}, ids(result))
}

func TestEvaluate_SpecialtyWithoutMatchIsEmpty(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.Specialty = "Neurology"

	result := Evaluate(aliceAndBob(), filter)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestEvaluate_SpecialtyIsExact(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.Specialty = "cardiology"

	assert.Empty(t, Evaluate(sampleDirectory(), filter))

	filter.Specialty = "Cardiology"
	assert.Equal(t, []string{"1"}, ids(Evaluate(sampleDirectory(), filter)))
}

func TestEvaluate_EmptySpecialtyMeansAll(t *testing.T) {
	filter := entity.DoctorFilter{}
	assert.Len(t, Evaluate(sampleDirectory(), filter), len(sampleDirectory()))
}

func TestEvaluate_AvailabilityFilter(t *testing.T) {
	filter := entity.DefaultDoctorFilter()
	filter.Availability = entity.AvailabilityBusy

	result := Evaluate(sampleDirectory(), filter)
	assert.Equal(t, []string{"2", "5"}, ids(result))
}

func TestEvaluate_PredicatesCombineWithAnd(t *testing.T) {
	filter := entity.DoctorFilter{
		SearchText:   "a",
		Availability: entity.AvailabilityAvailable,
		SortBy:       entity.SortByExperience,
	}

	result := Evaluate(sampleDirectory(), filter)
	assert.Equal(t, []string{"1", "6", "3"}, ids(result))
}

func TestEvaluate_SortKeys(t *testing.T) {
	tests := []struct {
		name string
		key  entity.SortKey
		want []string
	}{
		{"distance", entity.SortByDistance, []string{"1", "2", "5", "3", "4", "6"}},
		{"rating keeps input order on ties", entity.SortByRating, []string{"1", "3", "2", "4", "5", "6"}},
		{"experience", entity.SortByExperience, []string{"4", "1", "2", "6", "5", "3"}},
		{"fee", entity.SortByFee, []string{"3", "6", "5", "1", "2", "4"}},
		{"availability", entity.SortByAvailability, []string{"1", "3", "6", "2", "5", "4"}},
		{"unknown falls back to distance", entity.SortKey("popularity"), []string{"1", "2", "5", "3", "4", "6"}},
		{"empty falls back to distance", entity.SortKey(""), []string{"1", "2", "5", "3", "4", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(sampleDirectory(), entity.DoctorFilter{SortBy: tt.key})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestEvaluate_AdjacentPairsRespectComparator(t *testing.T) {
	keys := []entity.SortKey{
		entity.SortByDistance, entity.SortByRating, entity.SortByExperience,
		entity.SortByFee, entity.SortByAvailability,
	}

	for _, key := range keys {
		result := Evaluate(sampleDirectory(), entity.DoctorFilter{SortBy: key})
		for i := 1; i < len(result); i++ {
			assert.False(t, Less(result[i], result[i-1], key),
				"key %s: %s placed after %s", key, result[i].ID, result[i-1].ID)
		}
	}
}

func TestEvaluate_IsSubsetAndSatisfiesFilter(t *testing.T) {
	records := sampleDirectory()
	filters := []entity.DoctorFilter{
		entity.DefaultDoctorFilter(),
		{SearchText: "e", SortBy: entity.SortByFee},
		{Specialty: "Neurology"},
		{Availability: entity.AvailabilityAvailable, SortBy: entity.SortByRating},
		{SearchText: "zzz"},
	}

	byID := make(map[string]entity.Doctor, len(records))
	for _, d := range records {
		byID[d.ID] = d
	}

	for _, filter := range filters {
		result := Evaluate(records, filter)
		seen := make(map[string]bool)
		for _, d := range result {
			_, ok := byID[d.ID]
			assert.True(t, ok, "invented record %s", d.ID)
			assert.False(t, seen[d.ID], "duplicated record %s", d.ID)
			seen[d.ID] = true
			assert.True(t, Matches(d, filter))
		}
	}
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	filter := entity.DoctorFilter{SearchText: "i", SortBy: entity.SortByAvailability}

	once := Evaluate(sampleDirectory(), filter)
	twice := Evaluate(once, filter)
	assert.Equal(t, ids(once), ids(twice))
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	records := sampleDirectory()
	before := ids(records)

	result := Evaluate(records, entity.DoctorFilter{SortBy: entity.SortByExperience})
	require.NotEmpty(t, result)
	result[0].Name = "changed"

	assert.Equal(t, before, ids(records))
	for _, d := range records {
		assert.NotEqual(t, "changed", d.Name)
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	result := Evaluate(nil, entity.DefaultDoctorFilter())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestEvaluate_UnparsableDistanceSortsLastInInputOrder(t *testing.T) {
	records := []entity.Doctor{
		doctor("x", "X", "Surgery", "far away", 4),
		doctor("a", "A", "Surgery", "3 mi", 4),
		doctor("y", "Y", "Surgery", "", 4),
		doctor("b", "B", "Surgery", "0.5 mi", 4),
	}

	result := Evaluate(records, entity.DefaultDoctorFilter())
	assert.Equal(t, []string{"b", "a", "x", "y"}, ids(result))
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2.3 mi", 2.3},
		{"  10km", 10},
		{"0.8 mi", 0.8},
		{".5 mi", 0.5},
		{"-1 mi", -1},
		{"1e2 m", 100},
		{"7", 7},
		{"12. mi", 12},
		{"\u00a02.5 mi", 2.5},
		{"\u2003\u30004 km", 4},
		{"\ufeff3 mi", 3},
		{"\v\f6", 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDistance(tt.input), tt.input)
	}

	for _, bad := range []string{"", "mi 2", "unknown", ".", "-", "\u200b1 mi"} {
		assert.True(t, math.IsInf(ParseDistance(bad), 1), bad)
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleDirectory())
	assert.Equal(t, entity.DirectoryStats{DoctorsFound: 6, AvailableNow: 3, PatientsInQueue: 19}, stats)

	assert.Equal(t, entity.DirectoryStats{}, Summarize(nil))
}
