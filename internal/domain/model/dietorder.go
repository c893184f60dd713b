package model

// OrderStatus tracks whether a diet order is being served.
// Active and paused are reversible via explicit pause/restart actions.
type OrderStatus string

const (
	OrderActive  OrderStatus = "active"
	OrderPaused  OrderStatus = "paused"
	OrderStopped OrderStatus = "stopped"
)

// ApprovalStatus tracks the dietician review outcome of an order.
// Approved and rejected are terminal; there is no path back to pending.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// approvalTransitions is the explicit transition table for ApprovalStatus.
// Rejecting an already rejected order is a permitted no-op so that the
// operation stays idempotent.
var approvalTransitions = map[ApprovalStatus]map[ApprovalStatus]bool{
	ApprovalPending:  {ApprovalApproved: true, ApprovalRejected: true},
	ApprovalApproved: {},
	ApprovalRejected: {ApprovalRejected: true},
}

// CanTransition reports whether the approval status may move to the target.
func (s ApprovalStatus) CanTransition(to ApprovalStatus) bool {
	return approvalTransitions[s][to]
}

// DietOrder is an active, priced instantiation of a diet package for a
// specific patient. PackageRate and PackageName are snapshots frozen at
// creation; they do not track later package edits. DietPackage holds the
// package id, prefixed with CustomPlanPrefix when it points at a custom plan.
//
// @Description Patient diet order subject to dietician approval
type DietOrder struct {
	ID                    string         `bson:"_id" json:"id"`
	PatientName           string         `bson:"patientName" json:"patientName"`
	PatientID             string         `bson:"patientId" json:"patientId"`
	ContactNumber         string         `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Age                   string         `bson:"age,omitempty" json:"age,omitempty"`
	Bed                   string         `bson:"bed,omitempty" json:"bed,omitempty"`
	Ward                  string         `bson:"ward,omitempty" json:"ward,omitempty"`
	Floor                 string         `bson:"floor,omitempty" json:"floor,omitempty"`
	DietPackage           string         `bson:"dietPackage" json:"dietPackage"`
	PackageName           string         `bson:"packageName,omitempty" json:"packageName,omitempty"`
	PackageRate           string         `bson:"packageRate" json:"packageRate"`
	StartDate             string         `bson:"startDate" json:"startDate"`
	EndDate               string         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	DoctorNotes           string         `bson:"doctorNotes,omitempty" json:"doctorNotes,omitempty"`
	Status                OrderStatus    `bson:"status" json:"status"`
	ApprovalStatus        ApprovalStatus `bson:"approvalStatus" json:"approvalStatus"`
	DieticianInstructions string         `bson:"dieticianInstructions,omitempty" json:"dieticianInstructions,omitempty"`
	PauseDate             string         `bson:"pauseDate,omitempty" json:"pauseDate,omitempty"`
	RestartDate           string         `bson:"restartDate,omitempty" json:"restartDate,omitempty"`
}
