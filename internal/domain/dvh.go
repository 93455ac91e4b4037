package domain

import (
	"errors"
	"fmt"
)

// ErrDVHOutOfRange is returned when a lookup falls outside the part of the
// curve the samples cover.
var ErrDVHOutOfRange = errors.New("outside the sampled dvh range")

// DVHPoint is one sample of a cumulative dose-volume histogram: the fraction
// of the ROI volume receiving at least DoseCGy.
type DVHPoint struct {
	DoseCGy float64
	Volume  float64
}

// DVH is the cumulative dose-volume histogram of one ROI in one plan.
// Points are ordered by ascending dose with non-increasing volume.
type DVH struct {
	RegionName string
	Points     []DVHPoint
}

// Validate checks ordering, the 0..1 volume range and that the curve runs
// down to zero volume.
func (d DVH) Validate() error {
	if len(d.Points) == 0 {
		return fmt.Errorf("dvh %q has no points", d.RegionName)
	}
	for i, p := range d.Points {
		if p.Volume < 0 || p.Volume > 1 {
			return fmt.Errorf("dvh %q point %d: volume %v outside 0..1", d.RegionName, i, p.Volume)
		}
		if p.DoseCGy < 0 {
			return fmt.Errorf("dvh %q point %d: negative dose %v", d.RegionName, i, p.DoseCGy)
		}
		if i == 0 {
			continue
		}
		prev := d.Points[i-1]
		if p.DoseCGy <= prev.DoseCGy {
			return fmt.Errorf("dvh %q point %d: dose must increase (%v after %v)", d.RegionName, i, p.DoseCGy, prev.DoseCGy)
		}
		if p.Volume > prev.Volume {
			return fmt.Errorf("dvh %q point %d: volume must not increase (%v after %v)", d.RegionName, i, p.Volume, prev.Volume)
		}
	}
	if last := d.Points[len(d.Points)-1]; last.Volume != 0 {
		return fmt.Errorf("dvh %q stops at %v cGy with volume %v: last point must reach volume 0", d.RegionName, last.DoseCGy, last.Volume)
	}
	return nil
}

// VolumeAtDose returns the volume fraction receiving at least doseCGy,
// interpolating linearly between samples. Outside the samples the answer is
// only known where the curve is pinned at full or zero volume; anywhere else
// the result is ErrDVHOutOfRange.
func (d DVH) VolumeAtDose(doseCGy float64) (float64, error) {
	pts := d.Points
	if len(pts) == 0 {
		return 0, fmt.Errorf("dvh %q has no points: %w", d.RegionName, ErrDVHOutOfRange)
	}
	first, last := pts[0], pts[len(pts)-1]
	if doseCGy < first.DoseCGy {
		if first.Volume == 1 {
			return 1, nil
		}
		return 0, fmt.Errorf("dvh %q: %v cGy is below the first sample at %v cGy: %w", d.RegionName, doseCGy, first.DoseCGy, ErrDVHOutOfRange)
	}
	if doseCGy > last.DoseCGy {
		if last.Volume == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("dvh %q: %v cGy is past the last sample at %v cGy: %w", d.RegionName, doseCGy, last.DoseCGy, ErrDVHOutOfRange)
	}
	if doseCGy == first.DoseCGy {
		return first.Volume, nil
	}
	for i := 1; i < len(pts); i++ {
		if doseCGy <= pts[i].DoseCGy {
			a, b := pts[i-1], pts[i]
			t := (doseCGy - a.DoseCGy) / (b.DoseCGy - a.DoseCGy)
			return a.Volume + t*(b.Volume-a.Volume), nil
		}
	}
	return last.Volume, nil
}

// DoseAtVolume returns the highest dose received by at least the given
// volume fraction. Fractions above the first sample or below the last one
// are ErrDVHOutOfRange.
func (d DVH) DoseAtVolume(fraction float64) (float64, error) {
	pts := d.Points
	if len(pts) == 0 {
		return 0, fmt.Errorf("dvh %q has no points: %w", d.RegionName, ErrDVHOutOfRange)
	}
	first, last := pts[0], pts[len(pts)-1]
	if fraction > first.Volume || fraction < last.Volume {
		return 0, fmt.Errorf("dvh %q: volume %v is outside the sampled %v..%v: %w", d.RegionName, fraction, last.Volume, first.Volume, ErrDVHOutOfRange)
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if b.Volume < fraction {
			t := (a.Volume - fraction) / (a.Volume - b.Volume)
			return a.DoseCGy + t*(b.DoseCGy-a.DoseCGy), nil
		}
	}
	return last.DoseCGy, nil
}
