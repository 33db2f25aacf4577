package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/transport"
)

func flatMatrix(t *testing.T, value float64) *transport.Matrix {
	t.Helper()
	m, err := transport.NewMatrix(
		[][]float64{{value, value, value, value}},
		[][]float64{{value, value, value, value}},
		nil,
	)
	require.NoError(t, err)

	return m
}

func TestTimeAwareMatrix_PicksHighestTimestampNotAfterDeparture(t *testing.T) {
	morning := flatMatrix(t, 10)
	midday := flatMatrix(t, 20)
	evening := flatMatrix(t, 30)

	tam := transport.NewTimeAwareMatrix(map[int][]transport.Snapshot{
		0: {
			{Timestamp: 0, Matrix: morning},
			{Timestamp: 100, Matrix: midday},
			{Timestamp: 200, Matrix: evening},
		},
	})

	profile := core.Profile{Index: 0}
	assert.Equal(t, 10.0, tam.Duration(profile, 0, 1, 0))
	assert.Equal(t, 10.0, tam.Duration(profile, 0, 1, 99))
	assert.Equal(t, 20.0, tam.Duration(profile, 0, 1, 100))
	assert.Equal(t, 20.0, tam.Duration(profile, 0, 1, 150))
	assert.Equal(t, 30.0, tam.Duration(profile, 0, 1, 500))
}

func TestTimeAwareMatrix_DepartureBeforeEarliestUsesEarliest(t *testing.T) {
	only := flatMatrix(t, 5)
	tam := transport.NewTimeAwareMatrix(map[int][]transport.Snapshot{
		0: {{Timestamp: 50, Matrix: only}},
	})

	profile := core.Profile{Index: 0}
	assert.Equal(t, 5.0, tam.Duration(profile, 0, 1, 0))
}

func TestTimeAwareMatrix_UnknownProfileIsUnreachable(t *testing.T) {
	tam := transport.NewTimeAwareMatrix(nil)
	profile := core.Profile{Index: 3}
	assert.Equal(t, transport.Unreachable, tam.Duration(profile, 0, 1, 0))
	assert.Equal(t, transport.Unreachable, tam.DistanceApprox(profile, 0, 1))
}

func TestTimeAwareMatrix_SnapshotIndexAt(t *testing.T) {
	a := flatMatrix(t, 1)
	b := flatMatrix(t, 2)
	tam := transport.NewTimeAwareMatrix(map[int][]transport.Snapshot{
		0: {{Timestamp: 0, Matrix: a}, {Timestamp: 10, Matrix: b}},
	})

	profile := core.Profile{Index: 0}
	assert.Equal(t, 0, tam.SnapshotIndexAt(profile, 5))
	assert.Equal(t, 1, tam.SnapshotIndexAt(profile, 10))
	assert.Equal(t, -1, tam.SnapshotIndexAt(core.Profile{Index: 9}, 0))
}
