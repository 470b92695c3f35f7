// Public domain.

package mpc

import "context"

// ObjectPayload returns the request parameters QueryObject would send
// for identifier, without contacting the service.
func (c *Client) ObjectPayload(identifier string) (Payload, error) {
	return Query{Identifier: identifier}.Payload()
}

// QueryObjectRaw sends an object lookup and returns the unparsed response.
func (c *Client) QueryObjectRaw(ctx context.Context, identifier string) (*Response, error) {
	p, err := c.ObjectPayload(identifier)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, p)
}

// QueryObject looks up a single object by name, number or provisional
// designation and returns its catalog properties.
//
// The service may match several records; only the first is returned.
// If nothing matches the result is nil with a nil error, and a "no
// results" warning goes to the logger set with WithLogger.  The default
// logger discards it.  With verbose set, schema conformance warnings
// are logged.
func (c *Client) QueryObject(ctx context.Context, identifier string, verbose bool) (Record, error) {
	r, err := c.QueryObjectRaw(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return c.parseObject(r, verbose)
}

// ParametersPayload returns the request parameters QueryParameters
// would send, without contacting the service.
func (c *Client) ParametersPayload(constraints, returnRequest string) (Payload, error) {
	q, err := parametersQuery(constraints, returnRequest)
	if err != nil {
		return nil, err
	}
	return q.Payload()
}

// QueryParametersRaw sends a constraint search and returns the unparsed
// response.
func (c *Client) QueryParametersRaw(ctx context.Context, constraints, returnRequest string) (*Response, error) {
	p, err := c.ParametersPayload(constraints, returnRequest)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, p)
}

// QueryParameters searches the catalog with constraints such as
// "semimajor_axis_min 15".  returnRequest optionally lists the fields to
// return, for example "semimajor_axis, inclination, eccentricity".
//
// An empty result returns nil with a nil error and logs a "no results"
// warning, which is discarded unless a logger was set with WithLogger.
func (c *Client) QueryParameters(ctx context.Context, constraints, returnRequest string, verbose bool) ([]Record, error) {
	q, err := parametersQuery(constraints, returnRequest)
	if err != nil {
		return nil, err
	}
	return c.Search(ctx, q, verbose)
}

// Search sends q and returns the matching records.  As with
// QueryParameters, no match gives nil records and a nil error.
func (c *Client) Search(ctx context.Context, q Query, verbose bool) ([]Record, error) {
	p, err := q.Payload()
	if err != nil {
		return nil, err
	}
	r, err := c.send(ctx, p)
	if err != nil {
		return nil, err
	}
	return c.parseRecords(r, q.Return, verbose)
}

// QueryObservations would return the observations of an object.  The
// service does not yet offer them; the error always matches
// ErrNotImplemented.
func (c *Client) QueryObservations(ctx context.Context, identifier string) ([]Record, error) {
	return nil, notImplemented("query observations")
}

func parametersQuery(constraints, returnRequest string) (Query, error) {
	if constraints == "" {
		return Query{}, invalid("", "constraints are required")
	}
	return parseQuery("", constraints, returnRequest)
}
