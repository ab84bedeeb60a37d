package anpp

import (
	"encoding/binary"
	"sort"
)

// Configuration packets carry a Permanent flag in their first byte:
// set on write to persist the setting across restarts. Reads always
// report it as zero, the device has no notion of reading it back.

// PacketTimerPeriodSize is the fixed payload size of PacketTimerPeriod.
const PacketTimerPeriodSize = 4

// PacketTimerPeriod configures the base tick of the periodic packet
// scheduler, in microseconds.
type PacketTimerPeriod struct {
	Permanent          byte
	UTCSynchronization byte
	Period             uint16
}

// PacketID implements Payload.
func (PacketTimerPeriod) PacketID() byte { return IDPacketTimerPeriod }

// MarshalBinary implements encoding.BinaryMarshaler.
func (t PacketTimerPeriod) MarshalBinary() ([]byte, error) {
	out := make([]byte, PacketTimerPeriodSize)
	out[0] = t.Permanent
	out[1] = t.UTCSynchronization
	binary.LittleEndian.PutUint16(out[2:], t.Period)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *PacketTimerPeriod) UnmarshalBinary(p []byte) error {
	if len(p) != PacketTimerPeriodSize {
		return &SizeError{Name: "PacketTimerPeriod", Len: len(p)}
	}
	t.Permanent = 0
	t.UTCSynchronization = p[1]
	t.Period = binary.LittleEndian.Uint16(p[2:])
	return nil
}

// PacketPeriods configures which packets the device emits periodically.
// Each entry maps a packet id to its period in timer ticks. With
// ClearExisting set the listed entries replace the whole table instead
// of merging into it.
type PacketPeriods struct {
	Permanent     byte
	ClearExisting byte
	Periods       map[byte]uint32
}

// PacketID implements Payload.
func (PacketPeriods) PacketID() byte { return IDPacketPeriods }

// MarshalBinary implements encoding.BinaryMarshaler. Entries are
// emitted in ascending packet id order so the same table always
// produces the same bytes.
func (pp PacketPeriods) MarshalBinary() ([]byte, error) {
	ids := make([]int, 0, len(pp.Periods))
	for id := range pp.Periods {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]byte, 2+5*len(ids))
	out[0] = pp.Permanent
	out[1] = pp.ClearExisting
	for i, id := range ids {
		e := out[2+5*i:]
		e[0] = byte(id)
		binary.LittleEndian.PutUint32(e[1:], pp.Periods[byte(id)])
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. An empty
// entry list is valid and decodes to an empty table.
func (pp *PacketPeriods) UnmarshalBinary(p []byte) error {
	if len(p) < 2 || (len(p)-2)%5 != 0 {
		return &SizeError{Name: "PacketPeriods", Len: len(p)}
	}
	pp.Permanent = 0
	pp.ClearExisting = p[1]
	pp.Periods = make(map[byte]uint32)
	for e := p[2:]; len(e) > 0; e = e[5:] {
		pp.Periods[e[0]] = binary.LittleEndian.Uint32(e[1:])
	}
	return nil
}

// BaudRatesSize is the fixed payload size of BaudRates.
const BaudRatesSize = 17

// BaudRates configures the serial port speeds. The reserved slot is
// kept zero in both directions.
type BaudRates struct {
	Permanent      byte
	PrimaryPort    uint32
	GPIO           uint32
	AuxiliaryRS232 uint32
	Reserved       uint32
}

// PacketID implements Payload.
func (BaudRates) PacketID() byte { return IDBaudRates }

// MarshalBinary implements encoding.BinaryMarshaler.
func (b BaudRates) MarshalBinary() ([]byte, error) {
	out := make([]byte, BaudRatesSize)
	out[0] = b.Permanent
	binary.LittleEndian.PutUint32(out[1:], b.PrimaryPort)
	binary.LittleEndian.PutUint32(out[5:], b.GPIO)
	binary.LittleEndian.PutUint32(out[9:], b.AuxiliaryRS232)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BaudRates) UnmarshalBinary(p []byte) error {
	if len(p) != BaudRatesSize {
		return &SizeError{Name: "BaudRates", Len: len(p)}
	}
	b.Permanent = 0
	b.PrimaryPort = binary.LittleEndian.Uint32(p[1:])
	b.GPIO = binary.LittleEndian.Uint32(p[5:])
	b.AuxiliaryRS232 = binary.LittleEndian.Uint32(p[9:])
	b.Reserved = 0
	return nil
}

// AlignmentSize is the fixed payload size of Alignment.
const AlignmentSize = 73

// Alignment configures the mounting of the device relative to the
// vehicle: a row-major direction cosine matrix plus sensor offsets in
// the body frame, in meters.
type Alignment struct {
	Permanent          byte
	DCM                [9]float32
	GNSSAntennaOffset  [3]float32
	OdometerOffset     [3]float32
	ExternalDataOffset [3]float32
}

// PacketID implements Payload.
func (Alignment) PacketID() byte { return IDAlignment }

// MarshalBinary implements encoding.BinaryMarshaler.
func (a Alignment) MarshalBinary() ([]byte, error) {
	out := make([]byte, AlignmentSize)
	out[0] = a.Permanent
	for i := 0; i < 9; i++ {
		putF32(out[1+4*i:], a.DCM[i])
	}
	for i := 0; i < 3; i++ {
		putF32(out[37+4*i:], a.GNSSAntennaOffset[i])
		putF32(out[49+4*i:], a.OdometerOffset[i])
		putF32(out[61+4*i:], a.ExternalDataOffset[i])
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Alignment) UnmarshalBinary(p []byte) error {
	if len(p) != AlignmentSize {
		return &SizeError{Name: "Alignment", Len: len(p)}
	}
	a.Permanent = 0
	for i := 0; i < 9; i++ {
		a.DCM[i] = getF32(p[1+4*i:])
	}
	for i := 0; i < 3; i++ {
		a.GNSSAntennaOffset[i] = getF32(p[37+4*i:])
		a.OdometerOffset[i] = getF32(p[49+4*i:])
		a.ExternalDataOffset[i] = getF32(p[61+4*i:])
	}
	return nil
}

// FilterOptionsSize is the fixed payload size of FilterOptions.
const FilterOptionsSize = 17

// FilterOptions configures the navigation filter. Bytes 8 through 16
// of the payload are reserved and kept zero.
type FilterOptions struct {
	Permanent                 byte
	VehicleType               byte
	EnableInternalGNSS        byte
	EnableAtmosphericAltitude byte
	EnableVelocityHeading     byte
	EnableReversingDetection  byte
	EnableMotionAnalysis      byte
}

// PacketID implements Payload.
func (FilterOptions) PacketID() byte { return IDFilterOptions }

// MarshalBinary implements encoding.BinaryMarshaler.
func (f FilterOptions) MarshalBinary() ([]byte, error) {
	out := make([]byte, FilterOptionsSize)
	out[0] = f.Permanent
	out[1] = f.VehicleType
	out[2] = f.EnableInternalGNSS
	out[3] = 0
	out[4] = f.EnableAtmosphericAltitude
	out[5] = f.EnableVelocityHeading
	out[6] = f.EnableReversingDetection
	out[7] = f.EnableMotionAnalysis
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *FilterOptions) UnmarshalBinary(p []byte) error {
	if len(p) != FilterOptionsSize {
		return &SizeError{Name: "FilterOptions", Len: len(p)}
	}
	f.Permanent = 0
	f.VehicleType = p[1]
	f.EnableInternalGNSS = p[2]
	f.EnableAtmosphericAltitude = p[4]
	f.EnableVelocityHeading = p[5]
	f.EnableReversingDetection = p[6]
	f.EnableMotionAnalysis = p[7]
	return nil
}

// MagneticCalibrationValuesSize is the fixed payload size of
// MagneticCalibrationValues.
const MagneticCalibrationValuesSize = 49

// MagneticCalibrationValues holds the hard iron bias vector and the
// row-major soft iron correction matrix.
type MagneticCalibrationValues struct {
	Permanent              byte
	HardIronBias           [3]float32
	SoftIronTransformation [9]float32
}

// PacketID implements Payload.
func (MagneticCalibrationValues) PacketID() byte { return IDMagneticCalibrationValues }

// MarshalBinary implements encoding.BinaryMarshaler.
func (m MagneticCalibrationValues) MarshalBinary() ([]byte, error) {
	out := make([]byte, MagneticCalibrationValuesSize)
	out[0] = m.Permanent
	for i := 0; i < 3; i++ {
		putF32(out[1+4*i:], m.HardIronBias[i])
	}
	for i := 0; i < 9; i++ {
		putF32(out[13+4*i:], m.SoftIronTransformation[i])
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *MagneticCalibrationValues) UnmarshalBinary(p []byte) error {
	if len(p) != MagneticCalibrationValuesSize {
		return &SizeError{Name: "MagneticCalibrationValues", Len: len(p)}
	}
	m.Permanent = 0
	for i := 0; i < 3; i++ {
		m.HardIronBias[i] = getF32(p[1+4*i:])
	}
	for i := 0; i < 9; i++ {
		m.SoftIronTransformation[i] = getF32(p[13+4*i:])
	}
	return nil
}

// MagneticCalibrationConfigurationSize is the fixed payload size of
// MagneticCalibrationConfiguration.
const MagneticCalibrationConfigurationSize = 1

// MagneticCalibrationConfiguration starts, cancels or resets a
// magnetic calibration run. Host-to-device only.
type MagneticCalibrationConfiguration struct {
	Action byte
}

// PacketID implements Payload.
func (MagneticCalibrationConfiguration) PacketID() byte { return IDMagneticCalibrationConfiguration }

// MarshalBinary implements encoding.BinaryMarshaler.
func (m MagneticCalibrationConfiguration) MarshalBinary() ([]byte, error) {
	return []byte{m.Action}, nil
}

// MagneticCalibrationStatusSize is the fixed payload size of
// MagneticCalibrationStatus.
const MagneticCalibrationStatusSize = 3

// MagneticCalibrationStatus reports the progress of a calibration run.
// Device-to-host only.
type MagneticCalibrationStatus struct {
	Status             byte
	Progress           byte
	LocalMagneticError byte
}

// PacketID implements Payload.
func (MagneticCalibrationStatus) PacketID() byte { return IDMagneticCalibrationStatus }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *MagneticCalibrationStatus) UnmarshalBinary(p []byte) error {
	if len(p) != MagneticCalibrationStatusSize {
		return &SizeError{Name: "MagneticCalibrationStatus", Len: len(p)}
	}
	m.Status = p[0]
	m.Progress = p[1]
	m.LocalMagneticError = p[2]
	return nil
}
