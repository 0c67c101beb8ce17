// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aeroSapphire/greprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ClusterID applies equality check predicate on the "cluster_id" field. It's identical to ClusterIDEQ.
func ClusterID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldClusterID, v))
}

// DrillID applies equality check predicate on the "drill_id" field. It's identical to DrillIDEQ.
func DrillID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillID, v))
}

// DrillType applies equality check predicate on the "drill_type" field. It's identical to DrillTypeEQ.
func DrillType(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillType, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ClusterIDEQ applies the EQ predicate on the "cluster_id" field.
func ClusterIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldClusterID, v))
}

// ClusterIDNEQ applies the NEQ predicate on the "cluster_id" field.
func ClusterIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldClusterID, v))
}

// ClusterIDIn applies the In predicate on the "cluster_id" field.
func ClusterIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldClusterID, vs...))
}

// ClusterIDNotIn applies the NotIn predicate on the "cluster_id" field.
func ClusterIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldClusterID, vs...))
}

// ClusterIDGT applies the GT predicate on the "cluster_id" field.
func ClusterIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldClusterID, v))
}

// ClusterIDGTE applies the GTE predicate on the "cluster_id" field.
func ClusterIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldClusterID, v))
}

// ClusterIDLT applies the LT predicate on the "cluster_id" field.
func ClusterIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldClusterID, v))
}

// ClusterIDLTE applies the LTE predicate on the "cluster_id" field.
func ClusterIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldClusterID, v))
}

// ClusterIDContains applies the Contains predicate on the "cluster_id" field.
func ClusterIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldClusterID, v))
}

// ClusterIDHasPrefix applies the HasPrefix predicate on the "cluster_id" field.
func ClusterIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldClusterID, v))
}

// ClusterIDHasSuffix applies the HasSuffix predicate on the "cluster_id" field.
func ClusterIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldClusterID, v))
}

// ClusterIDEqualFold applies the EqualFold predicate on the "cluster_id" field.
func ClusterIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldClusterID, v))
}

// ClusterIDContainsFold applies the ContainsFold predicate on the "cluster_id" field.
func ClusterIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldClusterID, v))
}

// DrillIDEQ applies the EQ predicate on the "drill_id" field.
func DrillIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillID, v))
}

// DrillIDNEQ applies the NEQ predicate on the "drill_id" field.
func DrillIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDrillID, v))
}

// DrillIDIn applies the In predicate on the "drill_id" field.
func DrillIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDrillID, vs...))
}

// DrillIDNotIn applies the NotIn predicate on the "drill_id" field.
func DrillIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDrillID, vs...))
}

// DrillIDGT applies the GT predicate on the "drill_id" field.
func DrillIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDrillID, v))
}

// DrillIDGTE applies the GTE predicate on the "drill_id" field.
func DrillIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDrillID, v))
}

// DrillIDLT applies the LT predicate on the "drill_id" field.
func DrillIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDrillID, v))
}

// DrillIDLTE applies the LTE predicate on the "drill_id" field.
func DrillIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDrillID, v))
}

// DrillIDContains applies the Contains predicate on the "drill_id" field.
func DrillIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldDrillID, v))
}

// DrillIDHasPrefix applies the HasPrefix predicate on the "drill_id" field.
func DrillIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldDrillID, v))
}

// DrillIDHasSuffix applies the HasSuffix predicate on the "drill_id" field.
func DrillIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldDrillID, v))
}

// DrillIDEqualFold applies the EqualFold predicate on the "drill_id" field.
func DrillIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldDrillID, v))
}

// DrillIDContainsFold applies the ContainsFold predicate on the "drill_id" field.
func DrillIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldDrillID, v))
}

// DrillTypeEQ applies the EQ predicate on the "drill_type" field.
func DrillTypeEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillType, v))
}

// DrillTypeNEQ applies the NEQ predicate on the "drill_type" field.
func DrillTypeNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDrillType, v))
}

// DrillTypeIn applies the In predicate on the "drill_type" field.
func DrillTypeIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDrillType, vs...))
}

// DrillTypeNotIn applies the NotIn predicate on the "drill_type" field.
func DrillTypeNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDrillType, vs...))
}

// DrillTypeGT applies the GT predicate on the "drill_type" field.
func DrillTypeGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDrillType, v))
}

// DrillTypeGTE applies the GTE predicate on the "drill_type" field.
func DrillTypeGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDrillType, v))
}

// DrillTypeLT applies the LT predicate on the "drill_type" field.
func DrillTypeLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDrillType, v))
}

// DrillTypeLTE applies the LTE predicate on the "drill_type" field.
func DrillTypeLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDrillType, v))
}

// DrillTypeContains applies the Contains predicate on the "drill_type" field.
func DrillTypeContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldDrillType, v))
}

// DrillTypeHasPrefix applies the HasPrefix predicate on the "drill_type" field.
func DrillTypeHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldDrillType, v))
}

// DrillTypeHasSuffix applies the HasSuffix predicate on the "drill_type" field.
func DrillTypeHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldDrillType, v))
}

// DrillTypeEqualFold applies the EqualFold predicate on the "drill_type" field.
func DrillTypeEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldDrillType, v))
}

// DrillTypeContainsFold applies the ContainsFold predicate on the "drill_type" field.
func DrillTypeContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldDrillType, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldCorrect, v))
}

// WordsIsNil applies the IsNil predicate on the "words" field.
func WordsIsNil() predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIsNull(FieldWords))
}

// WordsNotNil applies the NotNil predicate on the "words" field.
func WordsNotNil() predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotNull(FieldWords))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.NotPredicates(p))
}
