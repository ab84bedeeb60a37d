package anpp

import "encoding"

// Packet ids of the catalog. The id space is sparse; everything not
// listed here is unknown to this implementation.
const (
	IDAcknowledge                      byte = 0
	IDRequest                          byte = 1
	IDBootMode                         byte = 2
	IDDeviceInformation                byte = 3
	IDRestoreFactorySettings           byte = 4
	IDReset                            byte = 5
	IDSystemState                      byte = 20
	IDUnixTime                         byte = 21
	IDStatus                           byte = 23
	IDGeodeticPositionStdDev           byte = 24
	IDNEDVelocityStdDev                byte = 25
	IDEulerOrientationStdDev           byte = 26
	IDRawSensors                       byte = 28
	IDRawGNSS                          byte = 29
	IDSatellites                       byte = 30
	IDDetailedSatellites               byte = 31
	IDNEDVelocity                      byte = 35
	IDBodyVelocity                     byte = 36
	IDAcceleration                     byte = 37
	IDBodyAcceleration                 byte = 38
	IDQuaternionOrientation            byte = 40
	IDAngularVelocity                  byte = 42
	IDAngularAcceleration              byte = 43
	IDLocalMagneticField               byte = 50
	IDPacketTimerPeriod                byte = 180
	IDPacketPeriods                    byte = 181
	IDBaudRates                        byte = 182
	IDAlignment                        byte = 185
	IDFilterOptions                    byte = 186
	IDMagneticCalibrationValues        byte = 189
	IDMagneticCalibrationConfiguration byte = 190
	IDMagneticCalibrationStatus        byte = 191
)

// Payload is implemented by every packet payload in the catalog.
type Payload interface {
	PacketID() byte
}

// Outgoing is a payload the host can send to the device.
type Outgoing interface {
	Payload
	encoding.BinaryMarshaler
}

// Incoming is a payload the host can receive from the device.
type Incoming interface {
	Payload
	encoding.BinaryUnmarshaler
}

// decoders is the catalog table for the receivable packet types. Ids
// the device never sends (Request, resets, ...) have no entry.
var decoders = map[byte]func() Incoming{
	IDAcknowledge:               func() Incoming { return new(Acknowledge) },
	IDBootMode:                  func() Incoming { return new(BootMode) },
	IDDeviceInformation:         func() Incoming { return new(DeviceInformation) },
	IDSystemState:               func() Incoming { return new(SystemState) },
	IDUnixTime:                  func() Incoming { return new(UnixTime) },
	IDStatus:                    func() Incoming { return new(Status) },
	IDGeodeticPositionStdDev:    func() Incoming { return new(GeodeticPositionStdDev) },
	IDNEDVelocityStdDev:         func() Incoming { return new(NEDVelocityStdDev) },
	IDEulerOrientationStdDev:    func() Incoming { return new(EulerOrientationStdDev) },
	IDRawSensors:                func() Incoming { return new(RawSensors) },
	IDRawGNSS:                   func() Incoming { return new(RawGNSS) },
	IDSatellites:                func() Incoming { return new(Satellites) },
	IDDetailedSatellites:        func() Incoming { return new(DetailedSatellites) },
	IDNEDVelocity:               func() Incoming { return new(NEDVelocity) },
	IDBodyVelocity:              func() Incoming { return new(BodyVelocity) },
	IDAcceleration:              func() Incoming { return new(Acceleration) },
	IDBodyAcceleration:          func() Incoming { return new(BodyAcceleration) },
	IDQuaternionOrientation:     func() Incoming { return new(QuaternionOrientation) },
	IDAngularVelocity:           func() Incoming { return new(AngularVelocity) },
	IDAngularAcceleration:       func() Incoming { return new(AngularAcceleration) },
	IDLocalMagneticField:        func() Incoming { return new(LocalMagneticField) },
	IDPacketTimerPeriod:         func() Incoming { return new(PacketTimerPeriod) },
	IDPacketPeriods:             func() Incoming { return new(PacketPeriods) },
	IDBaudRates:                 func() Incoming { return new(BaudRates) },
	IDAlignment:                 func() Incoming { return new(Alignment) },
	IDFilterOptions:             func() Incoming { return new(FilterOptions) },
	IDMagneticCalibrationValues: func() Incoming { return new(MagneticCalibrationValues) },
	IDMagneticCalibrationStatus: func() Incoming { return new(MagneticCalibrationStatus) },
}

// Decode decodes a received payload into its catalog type. It returns
// ErrUnknownPacket for ids without a registered decoder and a
// *SizeError when the payload does not fit the type's layout.
func Decode(id byte, payload []byte) (Incoming, error) {
	newPayload, ok := decoders[id]
	if !ok {
		return nil, ErrUnknownPacket
	}
	pkt := newPayload()
	if err := pkt.UnmarshalBinary(payload); err != nil {
		return nil, err
	}
	return pkt, nil
}
