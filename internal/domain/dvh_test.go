package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectumDVH() DVH {
	return DVH{
		RegionName: "Rectum",
		Points: []DVHPoint{
			{DoseCGy: 0, Volume: 1},
			{DoseCGy: 1000, Volume: 1},
			{DoseCGy: 4000, Volume: 0.5},
			{DoseCGy: 6000, Volume: 0},
		},
	}
}

func TestDVH_Validate(t *testing.T) {
	assert.NoError(t, rectumDVH().Validate())

	tests := []struct {
		name    string
		dvh     DVH
		wantMsg string
	}{
		{"empty", DVH{RegionName: "X"}, "no points"},
		{"volume above one", DVH{RegionName: "X", Points: []DVHPoint{{0, 1.2}}}, "outside 0..1"},
		{"negative dose", DVH{RegionName: "X", Points: []DVHPoint{{-1, 1}}}, "negative dose"},
		{"dose not increasing", DVH{RegionName: "X", Points: []DVHPoint{{100, 1}, {100, 0.5}}}, "dose must increase"},
		{"volume increasing", DVH{RegionName: "X", Points: []DVHPoint{{0, 0.5}, {100, 0.6}}}, "volume must not increase"},
		{"stops before zero volume", stopsEarly(), "must reach volume 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dvh.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

// stopsEarly is a curve that ends while 60% of the ROI still receives dose.
func stopsEarly() DVH {
	return DVH{RegionName: "Rectum", Points: []DVHPoint{{0, 1}, {4000, 0.6}}}
}

func TestDVH_VolumeAtDose(t *testing.T) {
	d := rectumDVH()
	for dose, want := range map[float64]float64{
		0:    1.0,
		500:  1.0,
		2500: 0.75,
		4000: 0.5,
		5000: 0.25,
		7000: 0.0,
	} {
		got, err := d.VolumeAtDose(dose)
		require.NoError(t, err, "dose %v", dose)
		assert.InDelta(t, want, got, 1e-9, "dose %v", dose)
	}

	_, err := DVH{}.VolumeAtDose(100)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)
}

func TestDVH_VolumeAtDose_OutsideSamples(t *testing.T) {
	_, err := stopsEarly().VolumeAtDose(4080)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)

	got, err := stopsEarly().VolumeAtDose(2000)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, got, 1e-9)

	lateStart := DVH{RegionName: "PTV", Points: []DVHPoint{{1000, 0.9}, {2000, 0}}}
	_, err = lateStart.VolumeAtDose(500)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)

	pinned := DVH{RegionName: "PTV", Points: []DVHPoint{{1000, 1}, {2000, 0}}}
	got, err = pinned.VolumeAtDose(500)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestDVH_DoseAtVolume(t *testing.T) {
	d := rectumDVH()
	for fraction, want := range map[float64]float64{
		0.5:  4000,
		0.75: 2500,
		0.25: 5000,
		0:    6000,
	} {
		got, err := d.DoseAtVolume(fraction)
		require.NoError(t, err, "fraction %v", fraction)
		assert.InDelta(t, want, got, 1e-9, "fraction %v", fraction)
	}

	_, err := DVH{}.DoseAtVolume(0.5)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)
}

func TestDVH_DoseAtVolume_OutsideSamples(t *testing.T) {
	_, err := stopsEarly().DoseAtVolume(0.02)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)

	got, err := stopsEarly().DoseAtVolume(0.8)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, got, 1e-9)

	_, err = rectumDVH().DoseAtVolume(1.2)
	assert.ErrorIs(t, err, ErrDVHOutOfRange)
}

func TestDVH_InterpolationIsConsistent(t *testing.T) {
	d := rectumDVH()
	for _, dose := range []float64{1500, 2500, 4000, 4500, 5900} {
		v, err := d.VolumeAtDose(dose)
		require.NoError(t, err)
		back, err := d.DoseAtVolume(v)
		require.NoError(t, err)
		assert.InDelta(t, dose, back, 1e-6, "dose %v", dose)
	}
}

func TestPlan_DVHFor(t *testing.T) {
	p := &Plan{DVHs: []DVH{rectumDVH()}}
	got, ok := p.DVHFor("Rectum")
	assert.True(t, ok)
	assert.Len(t, got.Points, 4)

	_, ok = p.DVHFor("Bladder")
	assert.False(t, ok)
}
