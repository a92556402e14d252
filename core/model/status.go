package model

// RecordStatus is the lifecycle state of a rental or maintenance record.
type RecordStatus string

const (
	StatusActive    RecordStatus = "Active"
	StatusConcluded RecordStatus = "Concluded"
)

// VehicleStatus reflects the current occupancy of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable     VehicleStatus = "Available"
	VehicleRented        VehicleStatus = "Rented"
	VehicleInMaintenance VehicleStatus = "InMaintenance"
)

// Tier is the pricing class of a vehicle.
type Tier string

const (
	TierBasic    Tier = "Basic"
	TierAdvanced Tier = "Advanced"
)

// MaintenanceType doubles as the mechanic specialty domain.
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
)

// DailyRate returns the per-day rental rate for a tier.
func DailyRate(t Tier) float64 {
	if t == TierAdvanced {
		return 140
	}
	return 80
}
