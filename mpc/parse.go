// Public domain.

package mpc

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"
)

// parseObject unwraps an object lookup response, a JSON array of
// records each holding a "properties" mapping.  Only the first record is
// returned.  An empty array logs a warning and returns nil, nil.
func (c *Client) parseObject(r *Response, verbose bool) (Record, error) {
	var recs []map[string]json.RawMessage
	if err := json.Unmarshal(r.Body, &recs); err != nil {
		return nil, &ParseError{Msg: "object response not a JSON array of records", Err: err}
	}
	if len(recs) == 0 {
		c.log.Warn("no results")
		return nil, nil
	}
	raw, ok := recs[0]["properties"]
	if !ok {
		return nil, &ParseError{Msg: `object record has no "properties"`}
	}
	var props Record
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, &ParseError{Msg: `object "properties" not a mapping`, Err: err}
	}
	if props == nil {
		return nil, &ParseError{Msg: `object "properties" is null`}
	}
	if len(recs) > 1 {
		c.log.Debug("object lookup matched more than one record",
			zap.Int("records", len(recs)))
	}
	c.conform([]Record{props}, nil, verbose)
	return props, nil
}

// parseRecords unwraps a constraint search response, a JSON array of
// flat records.  An empty array logs a warning and returns nil, nil.
func (c *Client) parseRecords(r *Response, want []Field, verbose bool) ([]Record, error) {
	var recs []Record
	if err := json.Unmarshal(r.Body, &recs); err != nil {
		return nil, &ParseError{Msg: "search response not a JSON array of records", Err: err}
	}
	if len(recs) == 0 {
		c.log.Warn("no results")
		return nil, nil
	}
	for i, rec := range recs {
		if rec == nil {
			return nil, &ParseError{Msg: "search record " + strconv.Itoa(i) + " is null"}
		}
	}
	c.conform(recs, want, verbose)
	return recs, nil
}

// conform checks records against the field whitelist and the requested
// projection.  Problems are logged only when verbose is set.
func (c *Client) conform(recs []Record, want []Field, verbose bool) {
	if !verbose {
		return
	}
	unknown := map[string]bool{}
	missing := map[Field]int{}
	for _, rec := range recs {
		for k := range rec {
			if !Field(k).Known() {
				unknown[k] = true
			}
		}
		for _, f := range want {
			if _, ok := rec[string(f)]; !ok {
				missing[f]++
			}
		}
	}
	for k := range unknown {
		c.log.Warn("field not in catalog schema", zap.String("field", k))
	}
	for f, n := range missing {
		c.log.Warn("requested field missing from records",
			zap.String("field", string(f)),
			zap.Int("records", n))
	}
}
