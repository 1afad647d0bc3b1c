// Package store runs the read queries against kpop_idol_followers.
//
// Every identifier in the generated SQL comes from models.IdolTable; request
// values only ever travel as bound parameters.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"idolapi/internal/models"
)

type IdolStore struct {
	db *sql.DB
}

func NewIdolStore(db *sql.DB) *IdolStore {
	return &IdolStore{db: db}
}

// quoteIdent wraps a schema identifier for Postgres. The table uses
// mixed-case column names, so unquoted identifiers would be folded.
func quoteIdent(ident string) string {
	return `"` + ident + `"`
}

var selectIdols = func() string {
	cols := models.IdolTable.Columns()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
	}
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(quoted, ", "), quoteIdent(models.IdolTable.Table))
}()

// All returns the full table in its natural row order.
func (s *IdolStore) All(ctx context.Context) ([]models.Idol, error) {
	return s.query(ctx, selectIdols)
}

// ByStageName returns the rows whose stage name matches exactly. Stage name
// is the primary key, so at most one row comes back.
func (s *IdolStore) ByStageName(ctx context.Context, stageName string) ([]models.Idol, error) {
	q := selectIdols + " WHERE " + quoteIdent(models.IdolTable.StageName) + " = $1"
	return s.query(ctx, q, stageName)
}

// ByGroup returns all members of the named group (exact match).
func (s *IdolStore) ByGroup(ctx context.Context, groupName string) ([]models.Idol, error) {
	q := selectIdols + " WHERE " + quoteIdent(models.IdolTable.Group) + " = $1"
	return s.query(ctx, q, groupName)
}

// Search matches rows whose column contains value as a substring. The column
// must be an identifier resolved through models.LookupColumn. For the two
// measurement columns, rows with a NULL measurement also match.
func (s *IdolStore) Search(ctx context.Context, column, value string) ([]models.Idol, error) {
	q := selectIdols + " WHERE " + quoteIdent(column) + " LIKE $1"
	if models.NullableMeasurement(column) {
		q += " OR " + quoteIdent(column) + " IS NULL"
	}
	return s.query(ctx, q, "%"+value+"%")
}

// FilterCriteria holds the optional filter inputs. Zero values mean the
// criterion is absent and is not applied.
type FilterCriteria struct {
	Gender    string
	Country   string
	Company   string
	DebutYear int
	AgeFrom   int
	AgeTo     int
}

// Filter AND-combines all supplied criteria; with none supplied it returns
// the whole table.
func (s *IdolStore) Filter(ctx context.Context, c FilterCriteria) ([]models.Idol, error) {
	q := selectIdols + " WHERE 1=1"
	var args []interface{}
	var names []string

	like := func(name, column, value string) {
		args = append(args, "%"+value+"%")
		names = append(names, name)
		q += fmt.Sprintf(" AND %s LIKE $%d", quoteIdent(column), len(args))
	}

	if c.Gender != "" {
		like("gender", models.IdolTable.GenderX, c.Gender)
	}
	if c.Country != "" {
		like("country", models.IdolTable.Country, c.Country)
	}
	if c.Company != "" {
		like("company", models.IdolTable.Company, c.Company)
	}
	if c.DebutYear != 0 {
		args = append(args, c.DebutYear)
		names = append(names, "debut_year")
		q += fmt.Sprintf(" AND EXTRACT(YEAR FROM %s) = $%d", quoteIdent(models.IdolTable.Debut), len(args))
	}
	if c.AgeFrom != 0 {
		args = append(args, c.AgeFrom)
		names = append(names, "age_from")
		q += fmt.Sprintf(" AND %s >= $%d", quoteIdent(models.IdolTable.Age), len(args))
	}
	if c.AgeTo != 0 {
		args = append(args, c.AgeTo)
		names = append(names, "age_to")
		q += fmt.Sprintf(" AND %s <= $%d", quoteIdent(models.IdolTable.Age), len(args))
	}

	// Relaxation keyed on the bound parameter names. The names appended above
	// are a fixed set that never contains a measurement column, so no legal
	// request reaches this clause.
	for _, name := range names {
		if name == models.IdolTable.Height || name == models.IdolTable.Weight {
			q += fmt.Sprintf(" OR (%s IS NULL OR %s IS NULL)",
				quoteIdent(models.IdolTable.Height), quoteIdent(models.IdolTable.Weight))
			break
		}
	}

	return s.query(ctx, q, args...)
}

func (s *IdolStore) query(ctx context.Context, q string, args ...interface{}) ([]models.Idol, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Idol, 0)
	for rows.Next() {
		var i models.Idol
		if err := rows.Scan(
			&i.StageName, &i.Group, &i.IGName, &i.Followers, &i.GenderX,
			&i.FullName, &i.KoreanName, &i.KStageName, &i.DateOfBirth,
			&i.Debut, &i.Company, &i.Country, &i.SecondCountry, &i.Height,
			&i.Weight, &i.Birthplace, &i.OtherGroup, &i.FormerGroup,
			&i.GenderY, &i.Age, &i.YearCareer,
		); err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
