// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pathwise/pathwise/ent/curriculumdoc"
)

// CurriculumDoc is the model entity for the CurriculumDoc schema.
type CurriculumDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning learner; one active curriculum per learner
	LearnerID string `json:"learner_id,omitempty"`
	// Stable document identifier across versions
	CurriculumID string `json:"curriculum_id,omitempty"`
	// Document version, incremented on every mutation
	Version int64 `json:"version,omitempty"`
	// Full curriculum document as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CurriculumDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curriculumdoc.FieldData:
			values[i] = new([]byte)
		case curriculumdoc.FieldID, curriculumdoc.FieldVersion:
			values[i] = new(sql.NullInt64)
		case curriculumdoc.FieldLearnerID, curriculumdoc.FieldCurriculumID:
			values[i] = new(sql.NullString)
		case curriculumdoc.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CurriculumDoc fields.
func (_m *CurriculumDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curriculumdoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case curriculumdoc.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case curriculumdoc.FieldCurriculumID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curriculum_id", values[i])
			} else if value.Valid {
				_m.CurriculumID = value.String
			}
		case curriculumdoc.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case curriculumdoc.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case curriculumdoc.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CurriculumDoc.
// This includes values selected through modifiers, order, etc.
func (_m *CurriculumDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CurriculumDoc.
// Note that you need to call CurriculumDoc.Unwrap() before calling this method if this CurriculumDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CurriculumDoc) Update() *CurriculumDocUpdateOne {
	return NewCurriculumDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CurriculumDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CurriculumDoc) Unwrap() *CurriculumDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CurriculumDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CurriculumDoc) String() string {
	var builder strings.Builder
	builder.WriteString("CurriculumDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("curriculum_id=")
	builder.WriteString(_m.CurriculumID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CurriculumDocs is a parsable slice of CurriculumDoc.
type CurriculumDocs []*CurriculumDoc
