// Public domain.

package mpc

import (
	"math"
	"time"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// Elements are the heliocentric orbital elements of a catalog record.
type Elements struct {
	SemimajorAxis float64 // AU
	Eccentricity  float64
	Inclination   unit.Angle
	Node          unit.Angle // longitude of ascending node
	Peri          unit.Angle // argument of perihelion
	MeanAnomaly   unit.Angle
	// H is the absolute magnitude, NaN if the record has none.
	H float64
	// Epoch of osculation, zero if the record has none.
	Epoch time.Time
}

// Elements extracts orbital elements from r.  Angles are read in
// degrees.  Semimajor axis and eccentricity are required; other
// elements default to zero (H to NaN) when absent.
func (r Record) Elements() (Elements, error) {
	var e Elements
	var ok bool
	if e.SemimajorAxis, ok = r.Float(SemimajorAxis); !ok {
		return e, &ParseError{Msg: "record has no numeric semimajor_axis"}
	}
	if e.Eccentricity, ok = r.Float(Eccentricity); !ok {
		return e, &ParseError{Msg: "record has no numeric eccentricity"}
	}
	deg := func(f Field) unit.Angle {
		d, _ := r.Float(f)
		return unit.AngleFromDeg(d)
	}
	e.Inclination = deg(Inclination)
	e.Node = deg(AscendingNode)
	e.Peri = deg(ArgumentOfPerihelion)
	e.MeanAnomaly = deg(MeanAnomaly)
	if e.H, ok = r.Float(AbsoluteMagnitude); !ok {
		e.H = math.NaN()
	}
	if jd, ok := r.Float(EpochJD); ok && jd > 0 {
		e.Epoch = julian.JDToTime(jd)
	}
	return e, nil
}

// PerihelionDistance returns q in AU.
func (e Elements) PerihelionDistance() float64 {
	return e.SemimajorAxis * (1 - e.Eccentricity)
}

// AphelionDistance returns Q in AU, +Inf for unbound orbits.
func (e Elements) AphelionDistance() float64 {
	if e.Eccentricity >= 1 {
		return math.Inf(1)
	}
	return e.SemimajorAxis * (1 + e.Eccentricity)
}

// Period returns the sidereal orbital period in days, +Inf for unbound
// orbits.
func (e Elements) Period() float64 {
	a := e.SemimajorAxis
	if e.Eccentricity >= 1 || a <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * a * math.Sqrt(a) * astro.InvK
}

// aJupiter is the semimajor axis of Jupiter in AU.
const aJupiter = 5.2

// TisserandJupiter returns the Tisserand parameter with respect to
// Jupiter.
func (e Elements) TisserandJupiter() float64 {
	return tisserand(e.PerihelionDistance(), e.Eccentricity, e.Inclination.Rad())
}

func tisserand(q, e, i float64) float64 {
	return aJupiter*(1-e)/q + 2*math.Sqrt(q*(1+e)/aJupiter)*math.Cos(i)
}

// Classes returns the orbit classes e belongs to.
func (e Elements) Classes() []OrbitClass {
	if e.Eccentricity >= 1 {
		return nil
	}
	o := newShape(e)
	var cs []OrbitClass
	for _, c := range OrbitClasses {
		if c.is(o) {
			cs = append(cs, c)
		}
	}
	return cs
}
