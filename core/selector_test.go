package core

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func numberedName(i int) string {
	return string(rune('a' + i))
}

func TestFirstSuitableNoCandidates(t *testing.T) {
	_, err := firstSuitable(0, numberedName, func(int) error {
		t.Fatal("evaluate must not run")
		return nil
	})
	require.ErrorIs(t, err, ErrNoSuitableDevice)
}

func TestFirstSuitableSkipsCapabilityFailures(t *testing.T) {
	var evaluated []int
	rejections := []error{
		errors.Wrap(ErrQueueFamiliesMissing, "device 0"),
		errors.Wrap(ErrExtensionsMissing, "device 1"),
		errors.Wrap(ErrSwapchainInsufficient, "device 2"),
		nil,
	}

	chosen, err := firstSuitable(len(rejections), numberedName, func(i int) error {
		evaluated = append(evaluated, i)
		return rejections[i]
	})
	require.NoError(t, err)
	require.Equal(t, 3, chosen)
	require.Equal(t, []int{0, 1, 2, 3}, evaluated)
}

func TestFirstSuitableStopsAtFirstPass(t *testing.T) {
	var evaluated []int

	chosen, err := firstSuitable(4, numberedName, func(i int) error {
		evaluated = append(evaluated, i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 0, chosen)
	require.Equal(t, []int{0}, evaluated)
}

func TestFirstSuitableAllRejected(t *testing.T) {
	_, err := firstSuitable(3, numberedName, func(i int) error {
		return errors.Wrapf(ErrExtensionsMissing, "device %d", i)
	})
	require.ErrorIs(t, err, ErrNoSuitableDevice)
}

func TestFirstSuitableAbortsOnOtherErrors(t *testing.T) {
	lost := errors.New("device lost")
	var evaluated []int

	_, err := firstSuitable(3, numberedName, func(i int) error {
		evaluated = append(evaluated, i)
		if i == 1 {
			return lost
		}
		return errors.Wrap(ErrQueueFamiliesMissing, "rejected")
	})
	require.ErrorIs(t, err, lost)
	require.NotErrorIs(t, err, ErrNoSuitableDevice)
	require.Equal(t, []int{0, 1}, evaluated)
}

func TestIsCapabilityError(t *testing.T) {
	require.True(t, isCapabilityError(ErrQueueFamiliesMissing))
	require.True(t, isCapabilityError(ErrExtensionsMissing))
	require.True(t, isCapabilityError(errors.Wrap(ErrSwapchainInsufficient, "formats: 0")))
	require.False(t, isCapabilityError(ErrLayerUnavailable))
	require.False(t, isCapabilityError(ErrNoSuitableDevice))
	require.False(t, isCapabilityError(errors.New("device lost")))
}
