package fortune

// defaultAge is the age assumed for a user who never told their birth year.
const defaultAge = 30

// Profile holds what the user told about themselves.
type Profile struct {
	BirthYear int `json:"birthYear"`
}

// DefaultProfile returns the profile of a user aged 30 in 'year'.
func DefaultProfile(year int) Profile {
	return Profile{BirthYear: year - defaultAge}
}

// Age returns the age reached during 'year'.
func (p Profile) Age(year int) int {
	return year - p.BirthYear
}
