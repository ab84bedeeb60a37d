package anpp

import "encoding/binary"

// Request asks the device to send each of the listed packets once.
// Host-to-device only; the device replies with the packets themselves
// or with an Acknowledge carrying an error.
type Request struct {
	PacketIDs []byte
}

// PacketID implements Payload.
func (Request) PacketID() byte { return IDRequest }

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Request) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(r.PacketIDs))
	copy(out, r.PacketIDs)
	return out, nil
}

// Boot modes.
const (
	BootToBootloader byte = 0
	BootToProgram    byte = 1
)

// BootModeSize is the fixed payload size of a BootMode packet.
const BootModeSize = 1

// BootMode selects the boot target of the device.
type BootMode struct {
	Mode byte
}

// PacketID implements Payload.
func (BootMode) PacketID() byte { return IDBootMode }

// MarshalBinary implements encoding.BinaryMarshaler.
func (m BootMode) MarshalBinary() ([]byte, error) {
	return []byte{m.Mode}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *BootMode) UnmarshalBinary(p []byte) error {
	if len(p) != BootModeSize {
		return &SizeError{Name: "BootMode", Len: len(p)}
	}
	m.Mode = p[0]
	return nil
}

// DeviceInformationSize is the fixed payload size of DeviceInformation.
const DeviceInformationSize = 24

// DeviceInformation identifies the device. Informational, decode only.
type DeviceInformation struct {
	SoftwareVersion  uint32
	DeviceID         uint32
	HardwareRevision uint32
	SerialNumber     [3]uint32
}

// PacketID implements Payload.
func (DeviceInformation) PacketID() byte { return IDDeviceInformation }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DeviceInformation) UnmarshalBinary(p []byte) error {
	if len(p) != DeviceInformationSize {
		return &SizeError{Name: "DeviceInformation", Len: len(p)}
	}
	d.SoftwareVersion = binary.LittleEndian.Uint32(p)
	d.DeviceID = binary.LittleEndian.Uint32(p[4:])
	d.HardwareRevision = binary.LittleEndian.Uint32(p[8:])
	for i := 0; i < 3; i++ {
		d.SerialNumber[i] = binary.LittleEndian.Uint32(p[12+4*i:])
	}
	return nil
}

// Verification sequences for the destructive commands. The device only
// honors the command when the exact 4-byte constant is present; they
// are part of the wire contract.
var (
	restoreFactorySequence = [4]byte{0x1C, 0x9E, 0x42, 0x85}
	hotStartSequence       = [4]byte{0x7E, 0x7A, 0x05, 0x21}
	coldStartSequence      = [4]byte{0xB7, 0x38, 0x5D, 0x9A}
)

// RestoreFactorySettings resets the device configuration to factory
// defaults.
type RestoreFactorySettings struct{}

// PacketID implements Payload.
func (RestoreFactorySettings) PacketID() byte { return IDRestoreFactorySettings }

// MarshalBinary implements encoding.BinaryMarshaler.
func (RestoreFactorySettings) MarshalBinary() ([]byte, error) {
	out := restoreFactorySequence
	return out[:], nil
}

// HotStartReset restarts the device keeping the navigation solution.
// It shares packet id 5 with ColdStartReset; only the verification
// sequence disambiguates them.
type HotStartReset struct{}

// PacketID implements Payload.
func (HotStartReset) PacketID() byte { return IDReset }

// MarshalBinary implements encoding.BinaryMarshaler.
func (HotStartReset) MarshalBinary() ([]byte, error) {
	out := hotStartSequence
	return out[:], nil
}

// ColdStartReset restarts the device from scratch.
type ColdStartReset struct{}

// PacketID implements Payload.
func (ColdStartReset) PacketID() byte { return IDReset }

// MarshalBinary implements encoding.BinaryMarshaler.
func (ColdStartReset) MarshalBinary() ([]byte, error) {
	out := coldStartSequence
	return out[:], nil
}
