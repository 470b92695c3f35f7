// Public domain.

package mpc

import (
	"math"
	"strconv"
	"strings"
)

// Field is a catalog field name known to the MPC web service.
type Field string

// Fields frequently used by this package.  The full set accepted in
// constraints and projections is Fields.
const (
	AbsoluteMagnitude    Field = "absolute_magnitude"
	ArgumentOfPerihelion Field = "argument_of_perihelion"
	AscendingNode        Field = "ascending_node"
	DesignationField     Field = "designation"
	Eccentricity         Field = "eccentricity"
	EpochJD              Field = "epoch_jd"
	Inclination          Field = "inclination"
	Limit                Field = "limit"
	MeanAnomaly          Field = "mean_anomaly"
	NameField            Field = "name"
	NumberField          Field = "number"
	OrbitTypeField       Field = "orbit_type"
	PerihelionDistance   Field = "perihelion_distance"
	SemimajorAxis        Field = "semimajor_axis"
	TisserandJupiter     Field = "tisserand_jupiter"
)

// Fields is the closed whitelist of catalog fields.
var Fields = newFieldSet(
	// orbit
	"absolute_magnitude", "aphelion_distance", "arc_length",
	"argument_of_perihelion", "ascending_node", "delta_v",
	"eccentricity", "epoch", "epoch_jd", "epoch_mjd", "inclination",
	"longitude_of_perihelion", "mean_anomaly", "mean_daily_motion",
	"mean_longitude", "orbit_type", "orbit_uncertainty", "period",
	"perihelion_date", "perihelion_date_jd", "perihelion_distance",
	"phase_slope", "semimajor_axis", "semiminor_axis", "synodic_period",
	"tisserand_jupiter", "true_anomaly", "u_parameter",
	"p_vector_x", "p_vector_y", "p_vector_z",
	"q_vector_x", "q_vector_y", "q_vector_z",
	// minimum orbit intersection distances
	"earth_moid", "jupiter_moid", "mars_moid", "mercury_moid",
	"neptune_moid", "saturn_moid", "uranus_moid", "venus_moid",
	// identification
	"designation", "id", "name", "number", "object_type",
	"critical_list_numbered_object", "km_neo", "neo", "pha",
	"one_km_neo", "provisional_packed_desig", "permid",
	// observation summary
	"first_observation_date_used", "first_opposition_used",
	"last_observation_date_used", "last_opposition_used",
	"observations", "oppositions", "residual_rms", "arc_years",
	"computer", "reference", "updated_at", "created_at",
	// physical properties
	"albedo", "albedo_neg_unc", "albedo_pos_unc", "albedo_ref",
	"diameter", "diameter_neg_unc", "diameter_pos_unc", "diameter_ref",
	"density", "density_neg_unc", "density_pos_unc", "density_ref",
	"mass", "mass_neg_unc", "mass_pos_unc", "mass_ref",
	"rotation_direction", "spin_amplitude", "spin_period",
	"spin_period_ref", "lightcurve_quality", "lightcurve_notes",
	"pole_ecliptic_latitude", "pole_ecliptic_longitude",
	"taxonomy_class", "taxonomy_ref", "g_parameter",
	"color_bv", "color_ub", "color_vr", "color_ri", "color_jh",
	"color_hk", "color_gr", "color_gi", "color_ref",
	// satellites
	"binary", "satellites", "satellite_separation",
	"satellite_orbital_period",
	// comets
	"comet_type", "nuclear_magnitude", "nuclear_magnitude_slope",
	"total_magnitude", "total_magnitude_slope", "nongravitational_a1",
	"nongravitational_a2", "nongravitational_a3",
	"perihelion_time_jd", "fragment",
	// distant objects
	"resonance", "resonance_order", "libration_amplitude",
	"detached", "scattered",
	// request control
	"limit", "order_by", "order_by_desc",
)

type fieldSet map[Field]struct{}

func newFieldSet(names ...string) fieldSet {
	s := make(fieldSet, len(names))
	for _, n := range names {
		s[Field(n)] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s fieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// Known reports whether f is a whitelisted catalog field.
func (f Field) Known() bool { return Fields.Has(f) }

// Bound selects the comparison a constraint places on its field.
type Bound int

const (
	Equal Bound = iota // field value
	Min                // field_min value
	Max                // field_max value
)

const (
	minSuffix = "_min"
	maxSuffix = "_max"
)

func (b Bound) suffix() string {
	switch b {
	case Min:
		return minSuffix
	case Max:
		return maxSuffix
	}
	return ""
}

// Constraint restricts a catalog field to a numeric value or range end.
type Constraint struct {
	Field Field
	Bound Bound
	Value float64

	text string // value as written, if parsed from text
}

// NewConstraint validates field against the whitelist.  value must be
// finite.
func NewConstraint(field Field, bound Bound, value float64) (Constraint, error) {
	c := Constraint{Field: field, Bound: bound, Value: value}
	if err := c.validate(); err != nil {
		return Constraint{}, err
	}
	return c, nil
}

func (c Constraint) validate() error {
	if !c.Field.Known() && !isNumeric(string(c.Field)) {
		return invalid(c.Key(), "unknown catalog field")
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return invalid(c.Key(), "constraint value not numeric")
	}
	return nil
}

// Key is the payload key, the field name with any bound suffix.
func (c Constraint) Key() string {
	return string(c.Field) + c.Bound.suffix()
}

// ValueString is the payload value.  Values parsed from text keep
// their original spelling.
func (c Constraint) ValueString() string {
	if c.text != "" {
		return c.text
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

func (c Constraint) String() string {
	return c.Key() + " " + c.ValueString()
}

// ParseConstraints parses comma separated clauses of the form
// "<field>[_min|_max] <value>", for example
// "semimajor_axis_min 15, inclination_max 10".
//
// The base field, with any _min or _max suffix removed, must be in
// Fields.  A base that is itself a number is passed through unchecked.
// The value must be numeric.
func ParseConstraints(s string) ([]Constraint, error) {
	var cs []Constraint
	for _, clause := range strings.Split(s, ",") {
		f := strings.Fields(clause)
		if len(f) != 2 {
			return nil, invalid(strings.TrimSpace(clause),
				"constraint must be a field and a value")
		}
		token, value := f[0], f[1]
		base, bound := splitBound(token)
		if !Field(base).Known() && !isNumeric(base) {
			return nil, invalid(token, "unknown catalog field")
		}
		v, ok := parseNumber(value)
		if !ok {
			return nil, invalid(token+" "+value, "constraint value not numeric")
		}
		cs = append(cs, Constraint{
			Field: Field(base),
			Bound: bound,
			Value: v,
			text:  value,
		})
	}
	return cs, nil
}

func splitBound(token string) (base string, b Bound) {
	switch {
	case strings.HasSuffix(token, minSuffix):
		return strings.TrimSuffix(token, minSuffix), Min
	case strings.HasSuffix(token, maxSuffix):
		return strings.TrimSuffix(token, maxSuffix), Max
	}
	return token, Equal
}

// ParseFields parses a comma separated list of field names such as
// "semimajor_axis, inclination, eccentricity".  Every name must be in
// Fields.
func ParseFields(s string) ([]Field, error) {
	var fs []Field
	for _, n := range strings.Split(s, ",") {
		f := Field(strings.TrimSpace(n))
		if f == "" {
			return nil, invalid(s, "empty field name in list")
		}
		if !f.Known() {
			return nil, invalid(string(f), "unknown catalog field")
		}
		fs = append(fs, f)
	}
	return fs, nil
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isNumeric(s string) bool {
	_, ok := parseNumber(s)
	return ok
}
