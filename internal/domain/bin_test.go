package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBinStatus(t *testing.T) {
	got, err := ParseBinStatus("active")
	require.NoError(t, err)
	require.Equal(t, BinActive, got)

	_, err = ParseBinStatus("broken")
	require.Error(t, err)

	_, err = ParseBinStatus("")
	require.Error(t, err)
}

func TestFillLevelClamps(t *testing.T) {
	require.Equal(t, 75, SmartBin{Capacity: 75}.FillLevel())
	require.Equal(t, 100, SmartBin{Capacity: 120}.FillLevel())
	require.Equal(t, 0, SmartBin{Capacity: -3}.FillLevel())
}

func TestNeedsAttention(t *testing.T) {
	require.False(t, SmartBin{Sensor: SensorNormal}.NeedsAttention())
	require.True(t, SmartBin{Sensor: SensorWarning}.NeedsAttention())
	require.True(t, SmartBin{Sensor: SensorCritical}.NeedsAttention())
	require.False(t, SmartBin{}.NeedsAttention())
}

func TestBinValidate(t *testing.T) {
	valid := SmartBin{ID: "SB-001", State: BinActive, Sensor: SensorNormal}
	require.NoError(t, valid.Validate())

	require.Error(t, SmartBin{State: BinActive}.Validate())
	require.Error(t, SmartBin{ID: "SB-001", State: "parked"}.Validate())
	require.Error(t, SmartBin{ID: "SB-001", State: BinActive, Sensor: "loud"}.Validate())
}

func TestNotificationReadBucket(t *testing.T) {
	require.Equal(t, ReadBucketUnread, ReadBucket(Notification{}))
	require.Equal(t, ReadBucketRead, ReadBucket(Notification{Read: true}))
}

func TestParseNotificationType(t *testing.T) {
	got, err := ParseNotificationType("points")
	require.NoError(t, err)
	require.Equal(t, TypePoints, got)

	_, err = ParseNotificationType("spam")
	require.Error(t, err)
}

func TestTrainingBookable(t *testing.T) {
	require.True(t, TrainingSession{SpotsLeft: 1, TotalSpots: 10}.Bookable())
	require.False(t, TrainingSession{SpotsLeft: 0, TotalSpots: 10}.Bookable())
}

func TestCertificationCoveragePercent(t *testing.T) {
	require.Equal(t, 75, CertificationStat{TotalStaff: 24, Certified: 18}.CoveragePercent())
	require.Equal(t, 0, CertificationStat{TotalStaff: 0, Certified: 5}.CoveragePercent())
	require.Equal(t, 100, CertificationStat{TotalStaff: 4, Certified: 4}.CoveragePercent())
}

func TestChallengeProgressPercentClamps(t *testing.T) {
	require.Equal(t, 72, Challenge{Progress: 72}.ProgressPercent())
	require.Equal(t, 100, Challenge{Progress: 140}.ProgressPercent())
	require.Equal(t, 0, Challenge{Progress: -1}.ProgressPercent())
}
