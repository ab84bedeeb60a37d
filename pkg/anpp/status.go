package anpp

// SystemStatus bitfield flags.
const (
	SystemFailure                 uint16 = 0x0001
	SystemAccelerometerFailure    uint16 = 0x0002
	SystemGyroscopeFailure        uint16 = 0x0004
	SystemMagnetometerFailure     uint16 = 0x0008
	SystemPressureSensorFailure   uint16 = 0x0010
	SystemGNSSFailure             uint16 = 0x0020
	SystemAccelerometerOverRange  uint16 = 0x0040
	SystemGyroscopeOverRange      uint16 = 0x0080
	SystemMagnetometerOverRange   uint16 = 0x0100
	SystemPressureSensorOverRange uint16 = 0x0200
	SystemMinTemperatureAlarm     uint16 = 0x0400
	SystemMaxTemperatureAlarm     uint16 = 0x0800
	SystemLowVoltageAlarm         uint16 = 0x1000
	SystemHighVoltageAlarm        uint16 = 0x2000
	SystemGNSSAntennaDisconnected uint16 = 0x4000
	SystemDataOutputOverflowAlarm uint16 = 0x8000
)

// FilterStatus bitfield flags.
const (
	FilterOrientationInitialized uint16 = 0x0001
	FilterNavigationInitialized  uint16 = 0x0002
	FilterHeadingInitialized     uint16 = 0x0004
	FilterUTCInitialized         uint16 = 0x0008

	FilterGNSSFixStatusMask uint16 = 0x0070
	FilterGNSSNoFix         uint16 = 0x0000
	FilterGNSS2D            uint16 = 0x0010
	FilterGNSS3D            uint16 = 0x0020
	FilterGNSSSBAS          uint16 = 0x0030
	FilterGNSSDGPS          uint16 = 0x0040
	FilterGNSSOmnistar      uint16 = 0x0050
	FilterGNSSRTKFloat      uint16 = 0x0060
	FilterGNSSRTKFixed      uint16 = 0x0070

	FilterEvent1                     uint16 = 0x0080
	FilterEvent2                     uint16 = 0x0100
	FilterInternalGNSSEnabled        uint16 = 0x0200
	FilterMagneticHeadingEnabled     uint16 = 0x0400
	FilterVelocityHeadingEnabled     uint16 = 0x0800
	FilterAtmosphericAltitudeEnabled uint16 = 0x1000
	FilterExternalPositionActive     uint16 = 0x2000
	FilterExternalVelocityActive     uint16 = 0x4000
	FilterExternalHeadingActive      uint16 = 0x8000
)

// RawGNSS status bitfield.
const (
	RawGNSSFixStatusMask uint16 = 0x0007
	RawGNSSNoFix         uint16 = 0x0000
	RawGNSS2D            uint16 = 0x0001
	RawGNSS3D            uint16 = 0x0002
	RawGNSSSBAS          uint16 = 0x0003
	RawGNSSDGPS          uint16 = 0x0004
	RawGNSSOmnistar      uint16 = 0x0005
	RawGNSSRTKFloat      uint16 = 0x0006
	RawGNSSRTKFixed      uint16 = 0x0007

	RawGNSSHasDopplerVelocity          uint16 = 0x0008
	RawGNSSHasTime                     uint16 = 0x0010
	RawGNSSExternal                    uint16 = 0x0020
	RawGNSSHasTilt                     uint16 = 0x0040
	RawGNSSHasHeading                  uint16 = 0x0080
	RawGNSSHasFloatingAmbiguityHeading uint16 = 0x0100
)

// Satellite systems reported in SatelliteInfo.
const (
	SatelliteSystemUnknown  byte = 0
	SatelliteSystemGPS      byte = 1
	SatelliteSystemGLONASS  byte = 2
	SatelliteSystemBeiDou   byte = 3
	SatelliteSystemGalileo  byte = 4
	SatelliteSystemSBAS     byte = 5
	SatelliteSystemQZSS     byte = 6
	SatelliteSystemStarfire byte = 7
	SatelliteSystemOmnistar byte = 8
)

// Satellite frequency bitmask values.
const (
	SatelliteFrequencyL1CA byte = 0x01
	SatelliteFrequencyL1C  byte = 0x02
	SatelliteFrequencyL1P  byte = 0x04
	SatelliteFrequencyL1M  byte = 0x08
	SatelliteFrequencyL2C  byte = 0x10
	SatelliteFrequencyL2P  byte = 0x20
	SatelliteFrequencyL2M  byte = 0x40
	SatelliteFrequencyL5   byte = 0x80
)

// Vehicle types for FilterOptions.
const (
	VehicleUnconstrained       byte = 0
	VehicleBicycleOrMotorcycle byte = 1
	VehicleCar                 byte = 2
	VehicleHovercraft          byte = 3
	VehicleSubmarine           byte = 4
	Vehicle3DUnderwater        byte = 5
	VehicleFixedWingPlane      byte = 6
	Vehicle3DAircraft          byte = 7
	VehicleHuman               byte = 8
	VehicleBoat                byte = 9
	VehicleLargeShip           byte = 10
	VehicleStationary          byte = 11
	VehicleStuntPlane          byte = 12
	VehicleRaceCar             byte = 13
)

// Magnetic calibration actions.
const (
	MagneticCalibrationCancel  byte = 0
	MagneticCalibrationStart2D byte = 1
	MagneticCalibrationStart3D byte = 2
	MagneticCalibrationReset   byte = 3
)

// Magnetic calibration status values.
const (
	MagneticCalibrationNotCompleted            byte = 0
	MagneticCalibration2DCompleted             byte = 1
	MagneticCalibration3DCompleted             byte = 2
	MagneticCalibrationCustomCompleted         byte = 3
	MagneticCalibration2DInProgress            byte = 4
	MagneticCalibration3DInProgress            byte = 5
	MagneticCalibrationError2DExcessiveRoll    byte = 6
	MagneticCalibrationError2DExcessivePitch   byte = 7
	MagneticCalibrationErrorSensorOverRange    byte = 8
	MagneticCalibrationErrorSensorTimeout      byte = 9
	MagneticCalibrationErrorSensorSystemError  byte = 10
	MagneticCalibrationErrorSensorInterference byte = 11
)
