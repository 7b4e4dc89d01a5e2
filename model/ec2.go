package model

// Lifecycle and reservation states the coverage report cares about. Any other
// value is carried through unchanged and treated as non-qualifying.
const (
	InstanceStateRunning = "running"

	ReservationStateActive  = "active"
	ReservationStateRetired = "retired"
)

// RawInstance is a single EC2 instance as returned by the inventory.
// Empty strings stand for fields the API did not return.
type RawInstance struct {
	InstanceID      string
	PlatformDetails string
	InstanceType    string
	State           string
}

// RawReservation is a single reserved instance purchase.
type RawReservation struct {
	ReservedInstancesID string
	ProductDescription  string
	InstanceType        string
	State               string
	InstanceCount       int32
}
