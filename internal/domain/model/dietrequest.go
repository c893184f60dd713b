package model

// RequestStatus tracks a clinician-raised diet request.
// The display-cased values are part of the stored wire format.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestPlaced   RequestStatus = "Diet Order Placed"
	RequestRejected RequestStatus = "Rejected"
)

// requestTransitions mirrors the one-way progression of a request; a PATCH
// edit bypasses the table deliberately.
var requestTransitions = map[RequestStatus]map[RequestStatus]bool{
	RequestPending:  {RequestPlaced: true, RequestRejected: true},
	RequestPlaced:   {},
	RequestRejected: {},
}

// CanTransition reports whether the request status may move to the target.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return requestTransitions[s][to]
}

// DietRequest is the initial clinician-raised ask for a patient diet,
// prior to order creation.
//
// @Description Clinician diet request awaiting approval
type DietRequest struct {
	ID            string        `bson:"_id" json:"id"`
	PatientID     string        `bson:"patientId" json:"patientId"`
	PatientName   string        `bson:"patientName" json:"patientName"`
	Age           string        `bson:"age,omitempty" json:"age,omitempty"`
	ContactNumber string        `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	Bed           string        `bson:"bed,omitempty" json:"bed,omitempty"`
	Ward          string        `bson:"ward,omitempty" json:"ward,omitempty"`
	Floor         string        `bson:"floor,omitempty" json:"floor,omitempty"`
	Doctor        string        `bson:"doctor,omitempty" json:"doctor,omitempty"`
	DoctorNotes   string        `bson:"doctorNotes,omitempty" json:"doctorNotes,omitempty"`
	Status        RequestStatus `bson:"status" json:"status"`
}
