package anpp

import "encoding/binary"

// SystemStateSize is the fixed payload size of SystemState.
const SystemStateSize = 100

// SystemState is the primary navigation solution of the device.
// Position is latitude, longitude in radians and height in meters.
// Orientation is roll, pitch, heading in radians.
type SystemState struct {
	SystemStatus     uint16
	FilterStatus     uint16
	UnixSeconds      uint32
	UnixMicroseconds uint32
	Position         [3]float64
	VelocityNED      [3]float32
	BodyAcceleration [3]float32
	G                float32
	Orientation      [3]float32
	AngularVelocity  [3]float32
	PositionStdDev   [3]float32
}

// PacketID implements Payload.
func (SystemState) PacketID() byte { return IDSystemState }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SystemState) UnmarshalBinary(p []byte) error {
	if len(p) != SystemStateSize {
		return &SizeError{Name: "SystemState", Len: len(p)}
	}
	s.SystemStatus = binary.LittleEndian.Uint16(p)
	s.FilterStatus = binary.LittleEndian.Uint16(p[2:])
	s.UnixSeconds = binary.LittleEndian.Uint32(p[4:])
	s.UnixMicroseconds = binary.LittleEndian.Uint32(p[8:])
	for i := 0; i < 3; i++ {
		s.Position[i] = getF64(p[12+8*i:])
		s.VelocityNED[i] = getF32(p[36+4*i:])
		s.BodyAcceleration[i] = getF32(p[48+4*i:])
		s.Orientation[i] = getF32(p[64+4*i:])
		s.AngularVelocity[i] = getF32(p[76+4*i:])
		s.PositionStdDev[i] = getF32(p[88+4*i:])
	}
	s.G = getF32(p[60:])
	return nil
}

// UnixTimeSize is the fixed payload size of UnixTime.
const UnixTimeSize = 8

// UnixTime is the device clock as a Unix timestamp.
type UnixTime struct {
	Seconds      uint32
	Microseconds uint32
}

// PacketID implements Payload.
func (UnixTime) PacketID() byte { return IDUnixTime }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *UnixTime) UnmarshalBinary(p []byte) error {
	if len(p) != UnixTimeSize {
		return &SizeError{Name: "UnixTime", Len: len(p)}
	}
	t.Seconds = binary.LittleEndian.Uint32(p)
	t.Microseconds = binary.LittleEndian.Uint32(p[4:])
	return nil
}

// StatusSize is the fixed payload size of Status.
const StatusSize = 4

// Status carries the raw system and filter status bitfields without
// the rest of the navigation solution.
type Status struct {
	SystemStatus uint16
	FilterStatus uint16
}

// PacketID implements Payload.
func (Status) PacketID() byte { return IDStatus }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Status) UnmarshalBinary(p []byte) error {
	if len(p) != StatusSize {
		return &SizeError{Name: "Status", Len: len(p)}
	}
	s.SystemStatus = binary.LittleEndian.Uint16(p)
	s.FilterStatus = binary.LittleEndian.Uint16(p[2:])
	return nil
}

// Vector3Size is the payload size shared by all 3-component float
// packets.
const Vector3Size = 12

func getVec3(p []byte) (v [3]float32) {
	for i := 0; i < 3; i++ {
		v[i] = getF32(p[4*i:])
	}
	return
}

// GeodeticPositionStdDev is the standard deviation of latitude,
// longitude and height, in meters.
type GeodeticPositionStdDev struct {
	StdDev [3]float32
}

// PacketID implements Payload.
func (GeodeticPositionStdDev) PacketID() byte { return IDGeodeticPositionStdDev }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (g *GeodeticPositionStdDev) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "GeodeticPositionStdDev", Len: len(p)}
	}
	g.StdDev = getVec3(p)
	return nil
}

// NEDVelocityStdDev is the standard deviation of the NED velocity, in
// meters per second.
type NEDVelocityStdDev struct {
	StdDev [3]float32
}

// PacketID implements Payload.
func (NEDVelocityStdDev) PacketID() byte { return IDNEDVelocityStdDev }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *NEDVelocityStdDev) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "NEDVelocityStdDev", Len: len(p)}
	}
	n.StdDev = getVec3(p)
	return nil
}

// EulerOrientationStdDev is the standard deviation of roll, pitch and
// heading, in radians.
type EulerOrientationStdDev struct {
	StdDev [3]float32
}

// PacketID implements Payload.
func (EulerOrientationStdDev) PacketID() byte { return IDEulerOrientationStdDev }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *EulerOrientationStdDev) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "EulerOrientationStdDev", Len: len(p)}
	}
	e.StdDev = getVec3(p)
	return nil
}

// RawSensorsSize is the fixed payload size of RawSensors.
const RawSensorsSize = 48

// RawSensors carries uncalibrated inertial, magnetic and barometric
// readings.
type RawSensors struct {
	Accelerometers      [3]float32
	Gyroscopes          [3]float32
	Magnetometers       [3]float32
	IMUTemperature      float32
	Pressure            float32
	PressureTemperature float32
}

// PacketID implements Payload.
func (RawSensors) PacketID() byte { return IDRawSensors }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *RawSensors) UnmarshalBinary(p []byte) error {
	if len(p) != RawSensorsSize {
		return &SizeError{Name: "RawSensors", Len: len(p)}
	}
	r.Accelerometers = getVec3(p)
	r.Gyroscopes = getVec3(p[12:])
	r.Magnetometers = getVec3(p[24:])
	r.IMUTemperature = getF32(p[36:])
	r.Pressure = getF32(p[40:])
	r.PressureTemperature = getF32(p[44:])
	return nil
}

// RawGNSSSize is the fixed payload size of RawGNSS.
const RawGNSSSize = 74

// RawGNSS is the unfiltered GNSS receiver solution.
type RawGNSS struct {
	UnixSeconds      uint32
	UnixMicroseconds uint32
	Position         [3]float64
	VelocityNED      [3]float32
	PositionStdDev   [3]float32
	Pitch            float32
	Yaw              float32
	PitchStdDev      float32
	YawStdDev        float32
	Status           uint16
}

// PacketID implements Payload.
func (RawGNSS) PacketID() byte { return IDRawGNSS }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *RawGNSS) UnmarshalBinary(p []byte) error {
	if len(p) != RawGNSSSize {
		return &SizeError{Name: "RawGNSS", Len: len(p)}
	}
	r.UnixSeconds = binary.LittleEndian.Uint32(p)
	r.UnixMicroseconds = binary.LittleEndian.Uint32(p[4:])
	for i := 0; i < 3; i++ {
		r.Position[i] = getF64(p[8+8*i:])
	}
	r.VelocityNED = getVec3(p[32:])
	r.PositionStdDev = getVec3(p[44:])
	r.Pitch = getF32(p[56:])
	r.Yaw = getF32(p[60:])
	r.PitchStdDev = getF32(p[64:])
	r.YawStdDev = getF32(p[68:])
	r.Status = binary.LittleEndian.Uint16(p[72:])
	return nil
}

// SatellitesSize is the fixed payload size of Satellites.
const SatellitesSize = 13

// Satellites summarizes the satellite counts per constellation and the
// dilution of precision.
type Satellites struct {
	HDOP    float32
	VDOP    float32
	GPS     byte
	GLONASS byte
	BeiDou  byte
	Galileo byte
	SBAS    byte
}

// PacketID implements Payload.
func (Satellites) PacketID() byte { return IDSatellites }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Satellites) UnmarshalBinary(p []byte) error {
	if len(p) != SatellitesSize {
		return &SizeError{Name: "Satellites", Len: len(p)}
	}
	s.HDOP = getF32(p)
	s.VDOP = getF32(p[4:])
	s.GPS = p[8]
	s.GLONASS = p[9]
	s.BeiDou = p[10]
	s.Galileo = p[11]
	s.SBAS = p[12]
	return nil
}

// SatelliteInfoSize is the wire size of a single SatelliteInfo entry.
const SatelliteInfoSize = 7

// SatelliteInfo describes one tracked satellite.
type SatelliteInfo struct {
	System      byte
	PRN         byte
	Frequencies byte
	Elevation   byte
	Azimuth     uint16
	SNR         byte
}

// DetailedSatellites lists every tracked satellite. The payload is a
// plain concatenation of entries; an empty payload is a valid report
// of zero satellites.
type DetailedSatellites struct {
	Satellites []SatelliteInfo
}

// PacketID implements Payload.
func (DetailedSatellites) PacketID() byte { return IDDetailedSatellites }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DetailedSatellites) UnmarshalBinary(p []byte) error {
	if len(p)%SatelliteInfoSize != 0 {
		return &SizeError{Name: "DetailedSatellites", Len: len(p)}
	}
	d.Satellites = make([]SatelliteInfo, len(p)/SatelliteInfoSize)
	for i := range d.Satellites {
		e := p[i*SatelliteInfoSize:]
		d.Satellites[i] = SatelliteInfo{
			System:      e[0],
			PRN:         e[1],
			Frequencies: e[2],
			Elevation:   e[3],
			Azimuth:     binary.LittleEndian.Uint16(e[4:]),
			SNR:         e[6],
		}
	}
	return nil
}

// NEDVelocity is the filtered velocity in the north, east, down frame,
// in meters per second.
type NEDVelocity struct {
	Velocity [3]float32
}

// PacketID implements Payload.
func (NEDVelocity) PacketID() byte { return IDNEDVelocity }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *NEDVelocity) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "NEDVelocity", Len: len(p)}
	}
	n.Velocity = getVec3(p)
	return nil
}

// BodyVelocity is the filtered velocity in the body frame, in meters
// per second.
type BodyVelocity struct {
	Velocity [3]float32
}

// PacketID implements Payload.
func (BodyVelocity) PacketID() byte { return IDBodyVelocity }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BodyVelocity) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "BodyVelocity", Len: len(p)}
	}
	b.Velocity = getVec3(p)
	return nil
}

// Acceleration is the filtered acceleration in the body frame
// including gravity, in meters per second squared.
type Acceleration struct {
	Acceleration [3]float32
}

// PacketID implements Payload.
func (Acceleration) PacketID() byte { return IDAcceleration }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Acceleration) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "Acceleration", Len: len(p)}
	}
	a.Acceleration = getVec3(p)
	return nil
}

// BodyAccelerationSize is the fixed payload size of BodyAcceleration.
const BodyAccelerationSize = 16

// BodyAcceleration is the gravity-compensated acceleration in the body
// frame together with the estimated gravity magnitude.
type BodyAcceleration struct {
	Acceleration [3]float32
	G            float32
}

// PacketID implements Payload.
func (BodyAcceleration) PacketID() byte { return IDBodyAcceleration }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BodyAcceleration) UnmarshalBinary(p []byte) error {
	if len(p) != BodyAccelerationSize {
		return &SizeError{Name: "BodyAcceleration", Len: len(p)}
	}
	b.Acceleration = getVec3(p)
	b.G = getF32(p[12:])
	return nil
}

// QuaternionOrientationSize is the fixed payload size of
// QuaternionOrientation.
const QuaternionOrientationSize = 16

// QuaternionOrientation is the filtered orientation as a unit
// quaternion. The scalar component comes first on the wire.
type QuaternionOrientation struct {
	W float32
	X float32
	Y float32
	Z float32
}

// PacketID implements Payload.
func (QuaternionOrientation) PacketID() byte { return IDQuaternionOrientation }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (q *QuaternionOrientation) UnmarshalBinary(p []byte) error {
	if len(p) != QuaternionOrientationSize {
		return &SizeError{Name: "QuaternionOrientation", Len: len(p)}
	}
	q.W = getF32(p)
	q.X = getF32(p[4:])
	q.Y = getF32(p[8:])
	q.Z = getF32(p[12:])
	return nil
}

// AngularVelocity is the filtered angular velocity in the body frame,
// in radians per second.
type AngularVelocity struct {
	Velocity [3]float32
}

// PacketID implements Payload.
func (AngularVelocity) PacketID() byte { return IDAngularVelocity }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *AngularVelocity) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "AngularVelocity", Len: len(p)}
	}
	a.Velocity = getVec3(p)
	return nil
}

// AngularAcceleration is the filtered angular acceleration in the body
// frame, in radians per second squared.
type AngularAcceleration struct {
	Acceleration [3]float32
}

// PacketID implements Payload.
func (AngularAcceleration) PacketID() byte { return IDAngularAcceleration }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *AngularAcceleration) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "AngularAcceleration", Len: len(p)}
	}
	a.Acceleration = getVec3(p)
	return nil
}

// LocalMagneticField is the calibrated magnetic field in the body
// frame.
type LocalMagneticField struct {
	Field [3]float32
}

// PacketID implements Payload.
func (LocalMagneticField) PacketID() byte { return IDLocalMagneticField }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *LocalMagneticField) UnmarshalBinary(p []byte) error {
	if len(p) != Vector3Size {
		return &SizeError{Name: "LocalMagneticField", Len: len(p)}
	}
	l.Field = getVec3(p)
	return nil
}
