// Package search turns job search parameters into a storage-neutral
// predicate, resolves sorting and computes pagination.
//
// A Predicate is a small tree of conditions. Repositories either compile it
// to SQL (internal/repository) or evaluate it in memory with Eval
// (internal/repository/memory); both see the same tree, so filter semantics
// live in one place.
package search

import (
	"fmt"
	"strings"
)

// Field names a filterable attribute of a job.
type Field string

const (
	FieldStatus          Field = "status"
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldCompanyName     Field = "company.name"
	FieldSkills          Field = "skillsRequired"
	FieldCategoryID      Field = "categoryId"
	FieldLocation        Field = "location"
	FieldRemoteType      Field = "remoteType"
	FieldEmploymentType  Field = "employmentType"
	FieldExperienceLevel Field = "experienceLevel"
	FieldSalaryMin       Field = "salaryMin"
	FieldSalaryMax       Field = "salaryMax"
	FieldCompanyID       Field = "companyId"
	FieldPostedBy        Field = "postedBy"
	FieldIsFeatured      Field = "isFeatured"
	FieldIsUrgent        Field = "isUrgent"
	FieldCreatedAt       Field = "createdAt"
	FieldDeadline        Field = "applicationDeadline"
)

// Op is a comparison operator.
type Op uint8

const (
	// OpEq matches when the field equals Value.
	OpEq Op = iota + 1
	// OpIn matches when the field equals any element of Value ([]any).
	OpIn
	// OpContainsFold matches when the string field contains Value, ignoring case.
	OpContainsFold
	// OpHas matches when the array field has an element equal to Value.
	OpHas
	// OpGte matches when the field is present and >= Value.
	OpGte
	// OpLte matches when the field is present and <= Value.
	OpLte
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpIn:
		return "in"
	case OpContainsFold:
		return "contains"
	case OpHas:
		return "has"
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	default:
		return "?"
	}
}

// Predicate is a boolean expression over a job. The concrete types are Cond,
// And and Or.
type Predicate interface {
	predicate()
	String() string
}

// Cond compares one field against a value.
type Cond struct {
	Field Field
	Op    Op
	Value any
}

// And is satisfied when every child is satisfied. An empty And matches all.
type And []Predicate

// Or is satisfied when any child is satisfied. An empty Or matches nothing.
type Or []Predicate

func (Cond) predicate() {}
func (And) predicate()  {}
func (Or) predicate()   {}

func (c Cond) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}

func (a And) String() string { return join("AND", a) }
func (o Or) String() string  { return join("OR", o) }

func join(op string, children []Predicate) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

// Eq builds an equality condition.
func Eq(f Field, v any) Cond { return Cond{Field: f, Op: OpEq, Value: v} }

// ContainsFold builds a case-insensitive substring condition.
func ContainsFold(f Field, s string) Cond { return Cond{Field: f, Op: OpContainsFold, Value: s} }

// Has builds an array membership condition.
func Has(f Field, v any) Cond { return Cond{Field: f, Op: OpHas, Value: v} }

// Gte builds a lower bound condition.
func Gte(f Field, v any) Cond { return Cond{Field: f, Op: OpGte, Value: v} }

// Lte builds an upper bound condition.
func Lte(f Field, v any) Cond { return Cond{Field: f, Op: OpLte, Value: v} }

// In builds a set membership condition.
func In[T any](f Field, values []T) Cond {
	set := make([]any, len(values))
	for i, v := range values {
		set[i] = v
	}
	return Cond{Field: f, Op: OpIn, Value: set}
}
