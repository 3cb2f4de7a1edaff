package model

import (
	"strconv"
	"time"

	"github.com/iotaledger/hive.go/marshalutil"
)

// NemesisEpoch is the default network epoch that Timestamps are counted from.
var NemesisEpoch = time.Date(2016, time.April, 1, 0, 0, 0, 0, time.UTC)

// TimestampLength contains the amount of bytes that a marshaled version of the Timestamp contains.
const TimestampLength = marshalutil.Uint64Size

// Timestamp is a number of milliseconds since the network epoch.
type Timestamp uint64

// NewTimestamp converts the given time into a Timestamp relative to epoch. Times before the epoch map to 0.
func NewTimestamp(t time.Time, epoch time.Time) Timestamp {
	if t.Before(epoch) {
		return 0
	}

	return Timestamp(t.Sub(epoch).Milliseconds())
}

// NewDeadline returns the Timestamp that lies lifetime after now.
func NewDeadline(now time.Time, epoch time.Time, lifetime time.Duration) Timestamp {
	return NewTimestamp(now.Add(lifetime), epoch)
}

// TimestampFromMarshalUtil unmarshals a Timestamp using a MarshalUtil (for easier unmarshaling).
func TimestampFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Timestamp, error) {
	value, err := ReadUint64(marshalUtil, "Timestamp")
	return Timestamp(value), err
}

// Time returns the wall clock time of the Timestamp relative to epoch.
func (t Timestamp) Time(epoch time.Time) time.Time {
	return epoch.Add(time.Duration(t) * time.Millisecond)
}

// Bytes returns a marshaled version of the Timestamp.
func (t Timestamp) Bytes() []byte {
	return uint64Bytes(uint64(t))
}

// String returns a human-readable version of the Timestamp.
func (t Timestamp) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
