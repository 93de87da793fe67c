package query

import (
	"strings"

	"gorm.io/gorm"
)

// Filter accumulates typed predicate clauses independent of the storage
// engine and compiles them onto a gorm query in one pass.
type Filter struct {
	preds []predicate
}

type predicate interface {
	apply(tx *gorm.DB) *gorm.DB
}

type eqPred struct {
	column string
	value  any
}

func (p eqPred) apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(p.column+" = ?", p.value)
}

type matchPred struct {
	columns []string
	term    string
}

func (p matchPred) apply(tx *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(p.term) + "%"
	exprs := make([]string, 0, len(p.columns))
	vars := make([]any, 0, len(p.columns))
	for _, col := range p.columns {
		exprs = append(exprs, "lower("+col+") LIKE ?")
		vars = append(vars, pattern)
	}
	return tx.Where(strings.Join(exprs, " OR "), vars...)
}

type rangePred struct {
	column   string
	min, max float64
}

func (p rangePred) apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(p.column+" BETWEEN ? AND ?", p.min, p.max)
}

type memberPred struct {
	column    string
	joinTable string
	selectCol string
	whereCol  string
	values    []uint
}

func (p memberPred) apply(tx *gorm.DB) *gorm.DB {
	sub := "SELECT " + p.selectCol + " FROM " + p.joinTable + " WHERE " + p.whereCol + " IN ?"
	return tx.Where(p.column+" IN ("+sub+")", p.values)
}

// Eq adds an exact-equality clause.
func (f *Filter) Eq(column string, value any) *Filter {
	f.preds = append(f.preds, eqPred{column: column, value: value})
	return f
}

// Match adds a case-insensitive substring clause over one or more columns,
// any of which may match.
func (f *Filter) Match(term string, columns ...string) *Filter {
	f.preds = append(f.preds, matchPred{columns: columns, term: term})
	return f
}

// Between adds an inclusive numeric range clause.
func (f *Filter) Between(column string, min, max float64) *Filter {
	f.preds = append(f.preds, rangePred{column: column, min: min, max: max})
	return f
}

// MemberOf restricts column to rows referenced from a join table whereCol
// matches any of the given values.
func (f *Filter) MemberOf(column, joinTable, selectCol, whereCol string, values []uint) *Filter {
	f.preds = append(f.preds, memberPred{
		column:    column,
		joinTable: joinTable,
		selectCol: selectCol,
		whereCol:  whereCol,
		values:    values,
	})
	return f
}

// Apply compiles the accumulated clauses onto tx.
func (f *Filter) Apply(tx *gorm.DB) *gorm.DB {
	for _, p := range f.preds {
		tx = p.apply(tx)
	}
	return tx
}
