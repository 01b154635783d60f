package domain

import "fmt"

// BinStatus represents the operational status of a smart bin.
type BinStatus string

const (
	BinActive      BinStatus = "active"
	BinFull        BinStatus = "full"
	BinMaintenance BinStatus = "maintenance"
)

// IsValid checks if the bin status is valid.
func (s BinStatus) IsValid() bool {
	switch s {
	case BinActive, BinFull, BinMaintenance:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s BinStatus) String() string {
	return string(s)
}

// ParseBinStatus parses a string into a BinStatus.
func ParseBinStatus(status string) (BinStatus, error) {
	bs := BinStatus(status)
	if !bs.IsValid() {
		return "", fmt.Errorf("invalid bin status: %s", status)
	}
	return bs, nil
}

// SensorStatus is the fill-level alert state reported by a bin sensor.
type SensorStatus string

const (
	SensorNormal   SensorStatus = "normal"
	SensorWarning  SensorStatus = "warning"
	SensorCritical SensorStatus = "critical"
)

// IsValid checks if the sensor status is valid.
func (s SensorStatus) IsValid() bool {
	switch s {
	case SensorNormal, SensorWarning, SensorCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sensor status.
func (s SensorStatus) String() string {
	return string(s)
}

// Composition is the waste breakdown inside a bin, in percent.
type Composition struct {
	Organic    int
	Recyclable int
	Residual   int
}

// SmartBin is one bin in the facility fleet, with live sensor telemetry.
type SmartBin struct {
	ID           string
	Name         string
	Floor        string
	Location     string
	Types        []string
	State        BinStatus
	Capacity     int // fill percentage
	LastEmptied  string
	NextPickup   string
	Sensor       SensorStatus
	SensorOnline bool
	Temperature  int
	Composition  Composition
}

// ItemID returns the bin identifier.
func (b SmartBin) ItemID() string { return b.ID }

// Category returns "" — bins are filtered by status, not category.
func (b SmartBin) Category() string { return "" }

// Status returns the operational status tag.
func (b SmartBin) Status() string { return b.State.String() }

// SearchText returns the text matched by free-text search.
func (b SmartBin) SearchText() string {
	return b.Name + " " + b.Floor + " " + b.Location
}

// FillLevel returns the capacity clamped to [0, 100] for display.
func (b SmartBin) FillLevel() int {
	return ClampPercent(b.Capacity)
}

// NeedsAttention reports whether the sensor is in warning or critical state.
func (b SmartBin) NeedsAttention() bool {
	return b.Sensor == SensorWarning || b.Sensor == SensorCritical
}

// Validate validates the bin and returns an error if invalid.
func (b SmartBin) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("bin ID cannot be empty")
	}
	if !b.State.IsValid() {
		return fmt.Errorf("invalid bin status: %s", b.State)
	}
	if b.Sensor != "" && !b.Sensor.IsValid() {
		return fmt.Errorf("invalid sensor status: %s", b.Sensor)
	}
	return nil
}
