// Public domain.

package mpc

import "strconv"

// OrbitClass is a dynamical population or popular classification of
// small body orbits.
type OrbitClass struct {
	Abbr, Heading string
	is            func(o *shape) bool
}

func (c OrbitClass) String() string { return c.Abbr }

// shape holds the quantities the class bounds are written in.  Distances
// are AU, i is degrees, h may be NaN.
type shape struct {
	a, e, i, h float64
	q, bigQ    float64
	tj         float64
}

func newShape(el Elements) *shape {
	return &shape{
		a:    el.SemimajorAxis,
		e:    el.Eccentricity,
		i:    el.Inclination.Deg(),
		h:    el.H,
		q:    el.PerihelionDistance(),
		bigQ: el.AphelionDistance(),
		tj:   el.TisserandJupiter(),
	}
}

// within reports lo < x < hi.
func within(x, lo, hi float64) bool { return x > lo && x < hi }

// OrbitClasses lists the classes tested by Elements.Classes, in the
// order they are reported.
var OrbitClasses = []OrbitClass{
	{"Int", "MPC interest.", isMpcInterest},
	{"NEO", "NEO(q < 1.3)", isNeo},
	{"N22", "NEO(H <= 22)", func(o *shape) bool { return isNeo(o) && o.h < 22.5 }},
	{"N18", "NEO(H <= 18)", func(o *shape) bool { return isNeo(o) && o.h < 18.5 }},
	{"MC", "Mars Crosser", isMarsCrosser},
	{"Hun", "Hungaria gr.", isHungaria},
	{"Pho", "Phocaea group", isPhocaea},
	{"MB1", "Inner MB", isInnerMB},
	{"Pal", "Pallas group", isPallas},
	{"Han", "Hansa group", isHansa},
	{"MB2", "Middle MB", isMiddleMB},
	{"MB3", "Outer MB", isOuterMB},
	{"Hil", "Hilda group", isHilda},
	{"JTr", "Jupiter tr.", isTrojan},
	{"JFC", "Jupiter Comet", isJFC},
}

// q < 1.3, e >= .5, i >= 40 or Q > 10
func isMpcInterest(o *shape) bool {
	return o.q < 1.3 || o.e >= .5 || o.i >= 40 || o.bigQ > 10
}

// q < 1.3.  N22 and N18 add H rounded to the nearest integer <= 22, 18.
func isNeo(o *shape) bool { return o.q < 1.3 }

// 1.3 <= q < 1.67, Q > 1.58
func isMarsCrosser(o *shape) bool {
	return o.q >= 1.3 && o.q < 1.67 && o.bigQ > 1.58
}

// 1.78 < a < 2, e <= .18, 16 <= i <= 34
func isHungaria(o *shape) bool {
	return within(o.a, 1.78, 2) && o.e <= .18 && o.i >= 16 && o.i <= 34
}

// 2.2 < a < 2.45, q >= 1.5, 20 <= i <= 27
func isPhocaea(o *shape) bool {
	return within(o.a, 2.2, 2.45) && o.q >= 1.5 && o.i >= 20 && o.i <= 27
}

// 2.1 < a < 2.5, q >= 1.67, i below 7 at the inner edge rising to 17
// at the outer
func isInnerMB(o *shape) bool {
	return within(o.a, 2.1, 2.5) && o.q >= 1.67 && o.i < (o.a-2.1)/.4*10+7
}

// 2.5 < a < 2.8, e <= .35, 24 <= i <= 37
func isPallas(o *shape) bool {
	return within(o.a, 2.5, 2.8) && o.e <= .35 && o.i >= 24 && o.i <= 37
}

// 2.55 < a < 2.72, e <= .25, 20 <= i <= 23.5
func isHansa(o *shape) bool {
	return within(o.a, 2.55, 2.72) && o.e <= .25 && o.i >= 20 && o.i <= 23.5
}

// 2.5 < a < 2.8, e <= .45, i <= 20
func isMiddleMB(o *shape) bool {
	return within(o.a, 2.5, 2.8) && o.e <= .45 && o.i <= 20
}

// 2.8 < a < 3.25, e <= .4, i below 20 at the inner edge rising to 36
// at the outer
func isOuterMB(o *shape) bool {
	return within(o.a, 2.8, 3.25) && o.e <= .4 && o.i < (o.a-2.8)/.45*16+20
}

// 3.9 < a < 4.02, e <= .4, i <= 18
func isHilda(o *shape) bool {
	return within(o.a, 3.9, 4.02) && o.e <= .4 && o.i <= 18
}

// 5.05 < a < 5.35, e <= .22, i <= 38
func isTrojan(o *shape) bool {
	return within(o.a, 5.05, 5.35) && o.e <= .22 && o.i <= 38
}

// 2 < Tj < 3, q >= 1.3
func isJFC(o *shape) bool {
	return o.q >= 1.3 && within(o.tj, 2, 3)
}

// OrbitType is the MPC orbit_type code carried by catalog records.
type OrbitType int

var orbitTypeNames = [...]string{
	"Unclassified",
	"Atira",
	"Aten",
	"Apollo",
	"Amor",
	"Mars Crosser",
	"Hungaria",
	"Phocaea",
	"Hilda",
	"Jupiter Trojan",
	"Distant Object",
}

func (t OrbitType) String() string {
	if t >= 0 && int(t) < len(orbitTypeNames) {
		return orbitTypeNames[t]
	}
	return "orbit_type(" + strconv.Itoa(int(t)) + ")"
}

// OrbitType returns the orbit_type code of r.
func (r Record) OrbitType() (OrbitType, bool) {
	v, ok := r.Float(OrbitTypeField)
	return OrbitType(v), ok
}
