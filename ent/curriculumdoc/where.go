// Code generated by ent, DO NOT EDIT.

package curriculumdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pathwise/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldLearnerID, v))
}

// CurriculumID applies equality check predicate on the "curriculum_id" field. It's identical to CurriculumIDEQ.
func CurriculumID(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldCurriculumID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldVersion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurriculumIDEQ applies the EQ predicate on the "curriculum_id" field.
func CurriculumIDEQ(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldCurriculumID, v))
}

// CurriculumIDNEQ applies the NEQ predicate on the "curriculum_id" field.
func CurriculumIDNEQ(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNEQ(FieldCurriculumID, v))
}

// CurriculumIDIn applies the In predicate on the "curriculum_id" field.
func CurriculumIDIn(vs ...string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldIn(FieldCurriculumID, vs...))
}

// CurriculumIDNotIn applies the NotIn predicate on the "curriculum_id" field.
func CurriculumIDNotIn(vs ...string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNotIn(FieldCurriculumID, vs...))
}

// CurriculumIDGT applies the GT predicate on the "curriculum_id" field.
func CurriculumIDGT(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGT(FieldCurriculumID, v))
}

// CurriculumIDGTE applies the GTE predicate on the "curriculum_id" field.
func CurriculumIDGTE(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGTE(FieldCurriculumID, v))
}

// CurriculumIDLT applies the LT predicate on the "curriculum_id" field.
func CurriculumIDLT(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLT(FieldCurriculumID, v))
}

// CurriculumIDLTE applies the LTE predicate on the "curriculum_id" field.
func CurriculumIDLTE(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLTE(FieldCurriculumID, v))
}

// CurriculumIDContains applies the Contains predicate on the "curriculum_id" field.
func CurriculumIDContains(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldContains(FieldCurriculumID, v))
}

// CurriculumIDHasPrefix applies the HasPrefix predicate on the "curriculum_id" field.
func CurriculumIDHasPrefix(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldHasPrefix(FieldCurriculumID, v))
}

// CurriculumIDHasSuffix applies the HasSuffix predicate on the "curriculum_id" field.
func CurriculumIDHasSuffix(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldHasSuffix(FieldCurriculumID, v))
}

// CurriculumIDEqualFold applies the EqualFold predicate on the "curriculum_id" field.
func CurriculumIDEqualFold(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEqualFold(FieldCurriculumID, v))
}

// CurriculumIDContainsFold applies the ContainsFold predicate on the "curriculum_id" field.
func CurriculumIDContainsFold(v string) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldContainsFold(FieldCurriculumID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLTE(FieldVersion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CurriculumDoc) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CurriculumDoc) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CurriculumDoc) predicate.CurriculumDoc {
	return predicate.CurriculumDoc(sql.NotPredicates(p))
}
