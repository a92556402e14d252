package model

import "github.com/fleetlab/rentgen/core/store"

// Client is a rental customer. Email and license number are unique.
type Client struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
}

func ClientFromRow(r store.Row) Client {
	var c Client
	c.ID, _ = r.Int64("id")
	c.Name, _ = r.String("name")
	c.Email, _ = r.String("email")
	c.Phone, _ = r.String("phone")
	c.LicenseNumber, _ = r.String("license_number")
	return c
}

func (c Client) Row() store.Row {
	return store.Row{
		"name":           c.Name,
		"email":          c.Email,
		"phone":          c.Phone,
		"license_number": c.LicenseNumber,
	}
}

// Vehicle is a fleet vehicle. The plate is unique and the status mirrors the
// vehicle's current occupancy.
type Vehicle struct {
	ID     int64
	Plate  string
	Model  string
	Year   int
	Tier   Tier
	Status VehicleStatus
}

func VehicleFromRow(r store.Row) Vehicle {
	var v Vehicle
	v.ID, _ = r.Int64("id")
	v.Plate, _ = r.String("plate")
	v.Model, _ = r.String("model")
	year, _ := r.Int64("year")
	v.Year = int(year)
	tier, _ := r.String("tier")
	v.Tier = Tier(tier)
	status, _ := r.String("status")
	v.Status = VehicleStatus(status)
	return v
}

func (v Vehicle) Row() store.Row {
	return store.Row{
		"plate":  v.Plate,
		"model":  v.Model,
		"year":   v.Year,
		"tier":   string(v.Tier),
		"status": string(v.Status),
	}
}

// Insurance holds the flat fee per vehicle tier.
type Insurance struct {
	ID          int64
	BasicFee    float64
	AdvancedFee float64
}

// FeeFor returns the flat fee matching the vehicle tier.
func (i Insurance) FeeFor(t Tier) float64 {
	if t == TierAdvanced {
		return i.AdvancedFee
	}
	return i.BasicFee
}

func InsuranceFromRow(r store.Row) Insurance {
	var i Insurance
	i.ID, _ = r.Int64("id")
	i.BasicFee, _ = r.Float64("basic_fee")
	i.AdvancedFee, _ = r.Float64("advanced_fee")
	return i
}

func (i Insurance) Row() store.Row {
	return store.Row{
		"basic_fee":    i.BasicFee,
		"advanced_fee": i.AdvancedFee,
	}
}

// Mechanic performs maintenance of a single specialty.
type Mechanic struct {
	ID        int64
	Name      string
	Specialty MaintenanceType
}

func MechanicFromRow(r store.Row) Mechanic {
	var m Mechanic
	m.ID, _ = r.Int64("id")
	m.Name, _ = r.String("name")
	spec, _ := r.String("specialty")
	m.Specialty = MaintenanceType(spec)
	return m
}

func (m Mechanic) Row() store.Row {
	return store.Row{
		"name":      m.Name,
		"specialty": string(m.Specialty),
	}
}

// Rental books a vehicle for a client over an inclusive date range.
type Rental struct {
	ID          int64
	ClientID    int64
	VehicleID   int64
	InsuranceID int64
	Start       Date
	End         Date
	TotalValue  float64
	Status      RecordStatus
}

func RentalFromRow(r store.Row) Rental {
	var re Rental
	re.ID, _ = r.Int64("id")
	re.ClientID, _ = r.Int64("client_id")
	re.VehicleID, _ = r.Int64("vehicle_id")
	re.InsuranceID, _ = r.Int64("insurance_id")
	re.Start, _ = DateFromValue(r["start_date"])
	re.End, _ = DateFromValue(r["end_date"])
	re.TotalValue, _ = r.Float64("total_value")
	status, _ := r.String("status")
	re.Status = RecordStatus(status)
	return re
}

func (re Rental) Row() store.Row {
	return store.Row{
		"client_id":    re.ClientID,
		"vehicle_id":   re.VehicleID,
		"insurance_id": re.InsuranceID,
		"start_date":   re.Start.String(),
		"end_date":     re.End.String(),
		"total_value":  re.TotalValue,
		"status":       string(re.Status),
	}
}

// Service is a bookable rental add-on with a standard unit price.
type Service struct {
	ID            int64
	Name          string
	StandardPrice float64
}

func ServiceFromRow(r store.Row) Service {
	var s Service
	s.ID, _ = r.Int64("id")
	s.Name, _ = r.String("name")
	s.StandardPrice, _ = r.Float64("standard_price")
	return s
}

func (s Service) Row() store.Row {
	return store.Row{
		"name":           s.Name,
		"standard_price": s.StandardPrice,
	}
}

// RentalService is a rental add-on line.
type RentalService struct {
	RentalID  int64
	ServiceID int64
	Quantity  int
	Price     float64
}

func RentalServiceFromRow(r store.Row) RentalService {
	var rs RentalService
	rs.RentalID, _ = r.Int64("rental_id")
	rs.ServiceID, _ = r.Int64("service_id")
	qty, _ := r.Int64("quantity")
	rs.Quantity = int(qty)
	rs.Price, _ = r.Float64("price")
	return rs
}

func (rs RentalService) Row() store.Row {
	return store.Row{
		"rental_id":  rs.RentalID,
		"service_id": rs.ServiceID,
		"quantity":   rs.Quantity,
		"price":      rs.Price,
	}
}

// Maintenance takes a vehicle out of the rentable pool over a date range.
type Maintenance struct {
	ID          int64
	VehicleID   int64
	Type        MaintenanceType
	Start       Date
	End         Date
	Cost        float64
	Description string
	Status      RecordStatus
}

func MaintenanceFromRow(r store.Row) Maintenance {
	var m Maintenance
	m.ID, _ = r.Int64("id")
	m.VehicleID, _ = r.Int64("vehicle_id")
	typ, _ := r.String("type")
	m.Type = MaintenanceType(typ)
	m.Start, _ = DateFromValue(r["start_date"])
	m.End, _ = DateFromValue(r["end_date"])
	m.Cost, _ = r.Float64("cost")
	m.Description, _ = r.String("description")
	status, _ := r.String("status")
	m.Status = RecordStatus(status)
	return m
}

func (m Maintenance) Row() store.Row {
	return store.Row{
		"vehicle_id":  m.VehicleID,
		"type":        string(m.Type),
		"start_date":  m.Start.String(),
		"end_date":    m.End.String(),
		"cost":        m.Cost,
		"description": m.Description,
		"status":      string(m.Status),
	}
}

// MaintenanceMechanic links a mechanic to a maintenance record.
type MaintenanceMechanic struct {
	MaintenanceID int64
	MechanicID    int64
	HoursWorked   float64
}

func (mm MaintenanceMechanic) Row() store.Row {
	return store.Row{
		"maintenance_id": mm.MaintenanceID,
		"mechanic_id":    mm.MechanicID,
		"hours_worked":   mm.HoursWorked,
	}
}
