package model

// Table names of the rental dataset.
const (
	TableClients              = "clients"
	TableVehicles             = "vehicles"
	TableInsurances           = "insurances"
	TableRentals              = "rentals"
	TableServices             = "services"
	TableRentalServices       = "rental_services"
	TableMaintenances         = "maintenances"
	TableMechanics            = "mechanics"
	TableMaintenanceMechanics = "maintenance_mechanics"
)

// AllTables lists every table the auditor snapshots.
var AllTables = []string{
	TableClients,
	TableVehicles,
	TableInsurances,
	TableRentals,
	TableServices,
	TableRentalServices,
	TableMaintenances,
	TableMechanics,
	TableMaintenanceMechanics,
}
