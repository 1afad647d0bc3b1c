package models

import "time"

// Idol is one row of kpop_idol_followers, keyed by stage name.
// The dataset guarantees nothing except the key: every other column can be
// NULL, so all other fields are pointers and marshal as JSON null. JSON keys
// match the column names so every response row carries all 21 keys.
type Idol struct {
	StageName     string     `json:"Stage_Name"`
	Group         *string    `json:"Group"`
	IGName        *string    `json:"ig_name"`
	Followers     *int64     `json:"Followers"`
	GenderX       *string    `json:"Gender_x"`
	FullName      *string    `json:"Full_Name"`
	KoreanName    *string    `json:"Korean_Name"`
	KStageName    *string    `json:"K_Stage_Name"`
	DateOfBirth   *time.Time `json:"Date_of_Birth"`
	Debut         *time.Time `json:"Debut"`
	Company       *string    `json:"Company"`
	Country       *string    `json:"Country"`
	SecondCountry *string    `json:"Second_Country"`
	Height        *string    `json:"Height"`
	Weight        *string    `json:"Weight"`
	Birthplace    *string    `json:"Birthplace"`
	OtherGroup    *string    `json:"Other_Group"`
	FormerGroup   *string    `json:"Former_Group"`
	GenderY       *string    `json:"Gender_y"`
	Age           *int64     `json:"age"`
	YearCareer    *int64     `json:"year_career"`
}

// IdolTableSchema declares the kpop_idol_followers identifiers in one place.
// All SQL in the store is composed from these fields; client-supplied field
// names are only ever resolved through LookupColumn, never interpolated.
type IdolTableSchema struct {
	Table         string
	StageName     string
	Group         string
	IGName        string
	Followers     string
	GenderX       string
	FullName      string
	KoreanName    string
	KStageName    string
	DateOfBirth   string
	Debut         string
	Company       string
	Country       string
	SecondCountry string
	Height        string
	Weight        string
	Birthplace    string
	OtherGroup    string
	FormerGroup   string
	GenderY       string
	Age           string
	YearCareer    string
}

// IdolTable is the schema definition for kpop_idol_followers.
var IdolTable = IdolTableSchema{
	Table:         "kpop_idol_followers",
	StageName:     "Stage_Name",
	Group:         "Group",
	IGName:        "ig_name",
	Followers:     "Followers",
	GenderX:       "Gender_x",
	FullName:      "Full_Name",
	KoreanName:    "Korean_Name",
	KStageName:    "K_Stage_Name",
	DateOfBirth:   "Date_of_Birth",
	Debut:         "Debut",
	Company:       "Company",
	Country:       "Country",
	SecondCountry: "Second_Country",
	Height:        "Height",
	Weight:        "Weight",
	Birthplace:    "Birthplace",
	OtherGroup:    "Other_Group",
	FormerGroup:   "Former_Group",
	GenderY:       "Gender_y",
	Age:           "age",
	YearCareer:    "year_career",
}

func (t IdolTableSchema) Columns() []string {
	return []string{
		t.StageName, t.Group, t.IGName, t.Followers, t.GenderX, t.FullName,
		t.KoreanName, t.KStageName, t.DateOfBirth, t.Debut, t.Company,
		t.Country, t.SecondCountry, t.Height, t.Weight, t.Birthplace,
		t.OtherGroup, t.FormerGroup, t.GenderY, t.Age, t.YearCareer,
	}
}

var columnsByField = func() map[string]string {
	m := make(map[string]string, len(IdolTable.Columns()))
	for _, c := range IdolTable.Columns() {
		m[c] = c
	}
	return m
}()

// LookupColumn resolves a client-supplied field name to a declared column
// identifier. The returned identifier always comes from IdolTable, so it is
// safe to place in query text.
func LookupColumn(field string) (string, bool) {
	c, ok := columnsByField[field]
	return c, ok
}

// NullableMeasurement reports whether the column is one of the two
// physical-measurement columns the dataset leaves NULL for unknown values.
func NullableMeasurement(column string) bool {
	return column == IdolTable.Height || column == IdolTable.Weight
}
