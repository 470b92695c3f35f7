// Public domain.

package mpc

import (
	"net/url"
	"strconv"
	"strings"
)

// Payload holds the request parameters sent to the service, keyed by the
// parameter name the service expects.
type Payload map[string]string

// Payload keys that are not catalog fields or constraints.
const (
	jsonKey   = "json"
	returnKey = "return"
)

// Values converts p for form encoding.
func (p Payload) Values() url.Values {
	v := make(url.Values, len(p))
	for k, s := range p {
		v.Set(k, s)
	}
	return v
}

// Query is the typed form of a request.  At least one of Identifier and
// Constraints must be set.
type Query struct {
	Identifier  string
	Constraints []Constraint
	Return      []Field // projection, all fields if empty

	// OrderBy sorts results by a field, descending if Descending is set.
	OrderBy    Field
	Descending bool
	// Limit caps the number of records returned when > 0.
	Limit int
}

// Payload validates q and builds the request parameters.  The json
// flag is always set so that the service answers with JSON.
func (q Query) Payload() (Payload, error) {
	if q.Identifier == "" && len(q.Constraints) == 0 {
		return nil, invalid("", "an object identifier or constraints are required")
	}
	p := Payload{jsonKey: "1"}
	if q.Identifier != "" {
		k, err := Classify(q.Identifier)
		if err != nil {
			return nil, err
		}
		p[k.Key()] = q.Identifier
	}
	for _, c := range q.Constraints {
		if err := c.validate(); err != nil {
			return nil, err
		}
		p[c.Key()] = c.ValueString()
	}
	if len(q.Return) > 0 {
		names := make([]string, len(q.Return))
		for i, f := range q.Return {
			if !f.Known() {
				return nil, invalid(string(f), "unknown catalog field")
			}
			names[i] = string(f)
		}
		p[returnKey] = strings.Join(names, ",")
	}
	if q.OrderBy != "" {
		if !q.OrderBy.Known() {
			return nil, invalid(string(q.OrderBy), "unknown catalog field")
		}
		if q.Descending {
			p["order_by_desc"] = string(q.OrderBy)
		} else {
			p["order_by"] = string(q.OrderBy)
		}
	}
	if q.Limit < 0 {
		return nil, invalid(strconv.Itoa(q.Limit), "negative limit")
	}
	if q.Limit > 0 {
		p[string(Limit)] = strconv.Itoa(q.Limit)
	}
	if len(p) == 1 {
		return nil, invalid("", "request has no query parameters")
	}
	return p, nil
}

// BuildPayload builds request parameters from text arguments.  An empty
// string means the argument is absent.
//
// identifier is an object name, number or provisional designation.
// constraints is a comma separated list as accepted by ParseConstraints.
// projection is a comma separated list of fields to return.
func BuildPayload(identifier, constraints, projection string) (Payload, error) {
	q, err := parseQuery(identifier, constraints, projection)
	if err != nil {
		return nil, err
	}
	return q.Payload()
}

func parseQuery(identifier, constraints, projection string) (q Query, err error) {
	if identifier == "" && constraints == "" {
		return q, invalid("", "an object identifier or constraints are required")
	}
	q.Identifier = identifier
	if constraints != "" {
		if q.Constraints, err = ParseConstraints(constraints); err != nil {
			return q, err
		}
	}
	if projection != "" {
		if q.Return, err = ParseFields(projection); err != nil {
			return q, err
		}
	}
	return q, nil
}
