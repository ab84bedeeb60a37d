package device

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/anpp.go/pkg/anpp"
)

// fakeTransport records written frames and replays queued replies.
// With autoAck set, every written packet is acknowledged with the
// configured result, like a device that accepts or rejects everything.
type fakeTransport struct {
	written   [][]byte
	replies   []fakeReply
	autoAck   bool
	ackResult anpp.AckResult
}

type fakeReply struct {
	id      byte
	payload []byte
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	frame := make([]byte, len(p))
	copy(frame, p)
	f.written = append(f.written, frame)
	if f.autoAck {
		h, err := anpp.HeaderFromBytes(p)
		if err != nil {
			return 0, err
		}
		f.replies = append(f.replies, fakeReply{
			id:      anpp.IDAcknowledge,
			payload: []byte{h.PacketID, h.ChecksumLSB, h.ChecksumMSB, byte(f.ackResult)},
		})
	}
	return len(p), nil
}

func (f *fakeTransport) ReadPacket(deadline anpp.Deadline) (byte, []byte, error) {
	if len(f.replies) == 0 {
		return 0, nil, anpp.ErrTimeout
	}
	next := f.replies[0]
	f.replies = f.replies[1:]
	return next.id, next.payload, nil
}

func (f *fakeTransport) reply(pkt anpp.Payload, payload []byte) {
	f.replies = append(f.replies, fakeReply{id: pkt.PacketID(), payload: payload})
}

func requestFrame(t *testing.T, ids ...byte) []byte {
	h := anpp.NewHeader(anpp.IDRequest, ids)
	return append(h.Bytes(), ids...)
}

func TestDriverReadStatus(t *testing.T) {
	tr := &fakeTransport{}
	filter := anpp.FilterOrientationInitialized | anpp.FilterHeadingInitialized | anpp.FilterGNSS3D
	tr.reply(anpp.Status{}, []byte{0x01, 0x00, byte(filter), byte(filter >> 8)})

	d := NewDriver(tr)
	status, err := d.ReadStatus()
	require.NoError(t, err)
	require.Equal(t, uint16(1), status.SystemStatus)
	require.True(t, status.OrientationInitialized)
	require.False(t, status.NavigationInitialized)
	require.True(t, status.HeadingInitialized)
	require.False(t, status.UTCInitialized)
	require.Equal(t, anpp.FilterGNSS3D, status.GNSSFix)
	require.True(t, status.HasFix())

	require.Equal(t, [][]byte{requestFrame(t, anpp.IDStatus)}, tr.written)
}

func TestDriverReadTime(t *testing.T) {
	tr := &fakeTransport{}
	tr.reply(anpp.UnixTime{}, []byte{0x40, 0xE2, 0x01, 0x00, 0x10, 0x27, 0x00, 0x00})

	d := NewDriver(tr)
	at, err := d.ReadTime()
	require.NoError(t, err)
	require.Equal(t, time.Unix(123456, 10000*1000).UTC(), at)
}

func TestDriverReadTimeTimesOut(t *testing.T) {
	d := NewDriver(&fakeTransport{})
	_, err := d.ReadTime()
	require.Equal(t, anpp.ErrTimeout, err)
}

func TestDriverReadDeviceInformation(t *testing.T) {
	payload := make([]byte, anpp.DeviceInformationSize)
	payload[0] = 7
	tr := &fakeTransport{}
	tr.reply(anpp.DeviceInformation{}, payload)

	d := NewDriver(tr)
	info, err := d.ReadDeviceInformation()
	require.NoError(t, err)
	require.Equal(t, uint32(7), info.SoftwareVersion)
}

func TestDriverReadDetailedSatellites(t *testing.T) {
	tr := &fakeTransport{}
	tr.reply(anpp.DetailedSatellites{}, []byte{anpp.SatelliteSystemGPS, 4, 0, 30, 0, 0, 40})

	d := NewDriver(tr)
	sats, err := d.ReadDetailedSatellites()
	require.NoError(t, err)
	require.Len(t, sats, 1)
	require.Equal(t, byte(4), sats[0].PRN)
}

func TestDriverReadConfiguration(t *testing.T) {
	tr := &fakeTransport{}
	timerPeriod, _ := anpp.PacketTimerPeriod{UTCSynchronization: 1, Period: 1000}.MarshalBinary()
	tr.reply(anpp.PacketTimerPeriod{}, timerPeriod)
	alignment, _ := anpp.Alignment{GNSSAntennaOffset: [3]float32{0.5, 0, 1}}.MarshalBinary()
	tr.reply(anpp.Alignment{}, alignment)
	options, _ := anpp.FilterOptions{VehicleType: anpp.VehicleBoat, EnableInternalGNSS: 1}.MarshalBinary()
	tr.reply(anpp.FilterOptions{}, options)
	magValues, _ := anpp.MagneticCalibrationValues{HardIronBias: [3]float32{1, 2, 3}}.MarshalBinary()
	tr.reply(anpp.MagneticCalibrationValues{}, magValues)
	tr.reply(anpp.MagneticCalibrationStatus{}, []byte{anpp.MagneticCalibration2DCompleted, 100, 0})

	d := NewDriver(tr)
	conf, err := d.ReadConfiguration()
	require.NoError(t, err)
	require.True(t, conf.UTCSynchronization)
	require.Equal(t, time.Millisecond, conf.PacketTimerPeriod)
	require.Equal(t, [3]float32{0.5, 0, 1}, conf.GNSSAntennaOffset)
	require.Equal(t, anpp.VehicleBoat, conf.VehicleType)
	require.True(t, conf.EnableInternalGNSS)
	require.False(t, conf.EnableVelocityHeading)
	require.Equal(t, anpp.MagneticCalibration2DCompleted, conf.MagneticCalibrationStatus)
	require.Equal(t, [3]float32{1, 2, 3}, conf.HardIronBias)
}

func TestDriverSetConfiguration(t *testing.T) {
	tr := &fakeTransport{autoAck: true}
	d := NewDriver(tr)
	err := d.SetConfiguration(Configuration{
		UTCSynchronization: true,
		PacketTimerPeriod:  time.Millisecond,
		VehicleType:        anpp.VehicleCar,
		EnableInternalGNSS: true,
	})
	require.NoError(t, err)
	require.Len(t, tr.written, 3)

	ids := []byte{tr.written[0][1], tr.written[1][1], tr.written[2][1]}
	require.Equal(t, []byte{anpp.IDPacketTimerPeriod, anpp.IDAlignment, anpp.IDFilterOptions}, ids)

	// The alignment packet pins an identity mounting matrix.
	var alignment anpp.Alignment
	require.NoError(t, alignment.UnmarshalBinary(tr.written[1][anpp.HeaderSize:]))
	require.Equal(t, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, alignment.DCM)
}

func TestDriverSetConfigurationRejected(t *testing.T) {
	tr := &fakeTransport{autoAck: true, ackResult: anpp.AckFailedOutOfRange}
	d := NewDriver(tr)
	err := d.SetConfiguration(Configuration{})
	require.Error(t, err)
	ackErr, ok := err.(*anpp.AckError)
	require.True(t, ok)
	require.Equal(t, anpp.AckFailedOutOfRange, ackErr.Ack.Result)
	require.Len(t, tr.written, 1)
}

func TestDriverReset(t *testing.T) {
	tr := &fakeTransport{}
	d := NewDriver(tr)
	require.NoError(t, d.Reset(ResetFactory))
	require.Len(t, tr.written, 2)
	require.Equal(t, anpp.IDRestoreFactorySettings, tr.written[0][1])
	require.Equal(t, anpp.IDReset, tr.written[1][1])

	tr.written = nil
	require.NoError(t, d.Reset(ResetHot))
	require.Equal(t, []byte{0x7E, 0x7A, 0x05, 0x21}, tr.written[0][anpp.HeaderSize:])
}

func TestDriverPacketPeriods(t *testing.T) {
	tr := &fakeTransport{autoAck: true}
	d := NewDriver(tr)

	require.NoError(t, d.SetUseDeviceTime(true))
	require.True(t, d.UseDeviceTime())

	require.NoError(t, d.SetPacketPeriods(map[byte]uint32{anpp.IDSystemState: 10}))

	var periods anpp.PacketPeriods
	require.NoError(t, periods.UnmarshalBinary(tr.written[1][anpp.HeaderSize:]))
	require.Equal(t, byte(1), periods.ClearExisting)
	require.Equal(t, map[byte]uint32{anpp.IDSystemState: 10, anpp.IDUnixTime: 1}, periods.Periods)

	require.NoError(t, d.ClearPeriodicPackets())
	require.NoError(t, periods.UnmarshalBinary(tr.written[2][anpp.HeaderSize:]))
	require.Equal(t, byte(1), periods.ClearExisting)
	require.Equal(t, map[byte]uint32{anpp.IDUnixTime: 1}, periods.Periods)
}
