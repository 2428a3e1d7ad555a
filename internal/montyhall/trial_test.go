package montyhall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"montyhall/internal/util"
)

func TestPlayTrialCarAtTwoChoiceZero(t *testing.T) {
	a := CarAt(2)

	reveal, err := HostReveal(util.New(1), a, 0)
	require.NoError(t, err)
	require.Equal(t, 1, reveal)

	sw, err := PlayTrial(a, 0, reveal, Switch)
	require.NoError(t, err)
	require.Equal(t, 2, sw.Final)
	require.True(t, sw.Win)

	st, err := PlayTrial(a, 0, reveal, Stay)
	require.NoError(t, err)
	require.Equal(t, 0, st.Final)
	require.False(t, st.Win)
}

func TestSwitchAndStayAreComplementary(t *testing.T) {
	for car := 0; car < Doors; car++ {
		a := CarAt(car)
		for choice := 0; choice < Doors; choice++ {
			for reveal := 0; reveal < Doors; reveal++ {
				if reveal == choice || reveal == car {
					continue
				}
				sw, err := PlayTrial(a, choice, reveal, Switch)
				require.NoError(t, err)
				st, err := PlayTrial(a, choice, reveal, Stay)
				require.NoError(t, err)

				require.Equal(t, car == choice, st.Win, "car=%d choice=%d reveal=%d", car, choice, reveal)
				require.NotEqual(t, st.Win, sw.Win, "car=%d choice=%d reveal=%d", car, choice, reveal)
			}
		}
	}
}

func TestPlayTrialRejectsBadReveal(t *testing.T) {
	_, err := PlayTrial(CarAt(2), 0, 0, Switch)
	require.Error(t, err)
	_, err = PlayTrial(CarAt(2), 0, 2, Switch)
	require.Error(t, err)
	_, err = PlayTrial(CarAt(2), 0, 1, Strategy(7))
	require.Error(t, err)
	_, err = PlayTrial(Arrangement{}, 0, 1, Stay)
	require.Error(t, err)
}
