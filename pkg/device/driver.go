package device

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/anpp.go/pkg/anpp"
)

// DefaultReadTimeout bounds each request/response round trip unless
// the driver is configured otherwise.
const DefaultReadTimeout = time.Second

// ResetMode selects the kind of device reset.
type ResetMode int

// Reset modes.
const (
	ResetHot ResetMode = iota
	ResetCold
	ResetFactory
)

// Driver operates an ANPP navigation unit over a Transport.
type Driver struct {
	Transport   anpp.Transport
	ReadTimeout time.Duration

	useDeviceTime bool
}

// NewDriver creates a Driver with the default read timeout.
func NewDriver(t anpp.Transport) *Driver {
	return &Driver{Transport: t, ReadTimeout: DefaultReadTimeout}
}

func (d *Driver) deadline() anpp.Deadline {
	if d.ReadTimeout <= 0 {
		return anpp.NoDeadline()
	}
	return anpp.DeadlineAfter(d.ReadTimeout)
}

// Request asks the device to send the listed packets once. The replies
// are read by the caller, usually through query round trips.
func (d *Driver) Request(ids ...byte) error {
	_, err := anpp.SendPacket(d.Transport, anpp.Request{PacketIDs: ids})
	return err
}

// query requests the packet type of pkt and waits for the reply.
func (d *Driver) query(pkt anpp.Incoming) error {
	deadline := d.deadline()
	if err := d.Request(pkt.PacketID()); err != nil {
		return err
	}
	glog.V(1).Infof("query packet %d", pkt.PacketID())
	return anpp.WaitForPacket(d.Transport, pkt, deadline)
}

// ReadDeviceInformation reads the device identification packet.
func (d *Driver) ReadDeviceInformation() (anpp.DeviceInformation, error) {
	var info anpp.DeviceInformation
	err := d.query(&info)
	return info, err
}

// ReadTime reads the device clock.
func (d *Driver) ReadTime() (time.Time, error) {
	var raw anpp.UnixTime
	if err := d.query(&raw); err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(raw.Seconds), int64(raw.Microseconds)*1000).UTC(), nil
}

// Status is the decoded device status.
type Status struct {
	SystemStatus uint16

	OrientationInitialized bool
	NavigationInitialized  bool
	HeadingInitialized     bool
	UTCInitialized         bool

	// GNSSFix is one of the anpp.FilterGNSS* values.
	GNSSFix uint16
}

// HasFix reports whether the GNSS receiver has any position fix.
func (s Status) HasFix() bool {
	return s.GNSSFix != anpp.FilterGNSSNoFix
}

// ReadStatus reads and decodes the status packet.
func (d *Driver) ReadStatus() (Status, error) {
	var raw anpp.Status
	if err := d.query(&raw); err != nil {
		return Status{}, err
	}
	return Status{
		SystemStatus:           raw.SystemStatus,
		OrientationInitialized: raw.FilterStatus&anpp.FilterOrientationInitialized != 0,
		NavigationInitialized:  raw.FilterStatus&anpp.FilterNavigationInitialized != 0,
		HeadingInitialized:     raw.FilterStatus&anpp.FilterHeadingInitialized != 0,
		UTCInitialized:         raw.FilterStatus&anpp.FilterUTCInitialized != 0,
		GNSSFix:                raw.FilterStatus & anpp.FilterGNSSFixStatusMask,
	}, nil
}

// ReadSystemState reads the full navigation solution.
func (d *Driver) ReadSystemState() (anpp.SystemState, error) {
	var state anpp.SystemState
	err := d.query(&state)
	return state, err
}

// ReadRawSensors reads the uncalibrated sensor packet.
func (d *Driver) ReadRawSensors() (anpp.RawSensors, error) {
	var raw anpp.RawSensors
	err := d.query(&raw)
	return raw, err
}

// ReadSatellites reads the satellite summary.
func (d *Driver) ReadSatellites() (anpp.Satellites, error) {
	var sats anpp.Satellites
	err := d.query(&sats)
	return sats, err
}

// ReadDetailedSatellites reads the per-satellite details.
func (d *Driver) ReadDetailedSatellites() ([]anpp.SatelliteInfo, error) {
	var sats anpp.DetailedSatellites
	if err := d.query(&sats); err != nil {
		return nil, err
	}
	return sats.Satellites, nil
}

// Configuration is the device configuration the driver manages.
type Configuration struct {
	UTCSynchronization bool
	PacketTimerPeriod  time.Duration

	GNSSAntennaOffset [3]float32

	VehicleType               byte
	EnableInternalGNSS        bool
	EnableAtmosphericAltitude bool
	EnableVelocityHeading     bool
	EnableReversingDetection  bool
	EnableMotionAnalysis      bool
}

// CurrentConfiguration is the configuration read back from the device,
// including the state only the device knows.
type CurrentConfiguration struct {
	Configuration

	MagneticCalibrationStatus byte
	HardIronBias              [3]float32
	SoftIronTransformation    [9]float32
}

// ReadConfiguration reads back the device configuration.
func (d *Driver) ReadConfiguration() (CurrentConfiguration, error) {
	var (
		timerPeriod anpp.PacketTimerPeriod
		alignment   anpp.Alignment
		options     anpp.FilterOptions
		magValues   anpp.MagneticCalibrationValues
		magStatus   anpp.MagneticCalibrationStatus
		conf        CurrentConfiguration
	)
	for _, pkt := range []anpp.Incoming{&timerPeriod, &alignment, &options, &magValues, &magStatus} {
		if err := d.query(pkt); err != nil {
			return CurrentConfiguration{}, err
		}
	}
	conf.UTCSynchronization = timerPeriod.UTCSynchronization != 0
	conf.PacketTimerPeriod = time.Duration(timerPeriod.Period) * time.Microsecond
	conf.GNSSAntennaOffset = alignment.GNSSAntennaOffset
	conf.VehicleType = options.VehicleType
	conf.EnableInternalGNSS = options.EnableInternalGNSS != 0
	conf.EnableAtmosphericAltitude = options.EnableAtmosphericAltitude != 0
	conf.EnableVelocityHeading = options.EnableVelocityHeading != 0
	conf.EnableReversingDetection = options.EnableReversingDetection != 0
	conf.EnableMotionAnalysis = options.EnableMotionAnalysis != 0
	conf.MagneticCalibrationStatus = magStatus.Status
	conf.HardIronBias = magValues.HardIronBias
	conf.SoftIronTransformation = magValues.SoftIronTransformation
	return conf, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// SetConfiguration applies conf to the device. Each configuration
// packet is acknowledged individually; the first rejection aborts the
// sequence.
func (d *Driver) SetConfiguration(conf Configuration) error {
	timerPeriod := anpp.PacketTimerPeriod{
		UTCSynchronization: boolByte(conf.UTCSynchronization),
		Period:             uint16(conf.PacketTimerPeriod / time.Microsecond),
	}
	alignment := anpp.Alignment{
		DCM:               [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		GNSSAntennaOffset: conf.GNSSAntennaOffset,
	}
	options := anpp.FilterOptions{
		VehicleType:               conf.VehicleType,
		EnableInternalGNSS:        boolByte(conf.EnableInternalGNSS),
		EnableAtmosphericAltitude: boolByte(conf.EnableAtmosphericAltitude),
		EnableVelocityHeading:     boolByte(conf.EnableVelocityHeading),
		EnableReversingDetection:  boolByte(conf.EnableReversingDetection),
		EnableMotionAnalysis:      boolByte(conf.EnableMotionAnalysis),
	}
	for _, pkt := range []anpp.Outgoing{timerPeriod, alignment, options} {
		if err := anpp.SendAndValidate(d.Transport, pkt, d.deadline()); err != nil {
			return err
		}
	}
	glog.V(1).Info("configuration applied")
	return nil
}

// Reset restarts the device. The device drops off the wire instead of
// acknowledging, so none is awaited. A factory reset is the restore
// command followed by a cold restart.
func (d *Driver) Reset(mode ResetMode) error {
	var err error
	switch mode {
	case ResetHot:
		_, err = anpp.SendPacket(d.Transport, anpp.HotStartReset{})
	case ResetCold:
		_, err = anpp.SendPacket(d.Transport, anpp.ColdStartReset{})
	case ResetFactory:
		if _, err = anpp.SendPacket(d.Transport, anpp.RestoreFactorySettings{}); err != nil {
			return err
		}
		_, err = anpp.SendPacket(d.Transport, anpp.ColdStartReset{})
	}
	return err
}

func (d *Driver) writePeriods(periods map[byte]uint32, clear bool) error {
	pkt := anpp.PacketPeriods{
		ClearExisting: boolByte(clear),
		Periods:       periods,
	}
	return anpp.SendAndValidate(d.Transport, pkt, d.deadline())
}

// SetPacketPeriods replaces the whole periodic packet table. The
// device time packet stays scheduled when device time is in use.
func (d *Driver) SetPacketPeriods(periods map[byte]uint32) error {
	merged := make(map[byte]uint32, len(periods)+1)
	for id, period := range periods {
		merged[id] = period
	}
	if d.useDeviceTime {
		if _, ok := merged[anpp.IDUnixTime]; !ok {
			merged[anpp.IDUnixTime] = 1
		}
	}
	return d.writePeriods(merged, true)
}

// SetPacketPeriod schedules one packet without touching the rest of
// the table. A zero period unschedules it.
func (d *Driver) SetPacketPeriod(id byte, period uint32) error {
	return d.writePeriods(map[byte]uint32{id: period}, false)
}

// ClearPeriodicPackets empties the periodic packet table, keeping the
// device time packet when device time is in use.
func (d *Driver) ClearPeriodicPackets() error {
	return d.writePeriods(map[byte]uint32{anpp.IDUnixTime: uint32(boolByte(d.useDeviceTime))}, true)
}

// SetUseDeviceTime schedules the device time packet on every timer
// tick so samples can be stamped with the device clock.
func (d *Driver) SetUseDeviceTime(enable bool) error {
	err := d.writePeriods(map[byte]uint32{anpp.IDUnixTime: uint32(boolByte(enable))}, false)
	if err != nil {
		return err
	}
	d.useDeviceTime = enable
	return nil
}

// UseDeviceTime reports whether the device clock is used for stamping.
func (d *Driver) UseDeviceTime() bool {
	return d.useDeviceTime
}
