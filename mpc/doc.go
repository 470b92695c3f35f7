// Public domain.

/*
Package mpc is a client for the Minor Planet Center catalog web service.

A Client turns keyword queries into POST requests to the service and
unwraps the JSON responses into Records, mappings of catalog field name to
value.

Two kinds of query are supported.  QueryObject looks up a single object
by name ("Eris"), number ("136199") or provisional designation
("2008TC3").  QueryParameters searches with constraints on catalog
fields, written as comma separated clauses:

	semimajor_axis_min 15, inclination_max 10

A clause is a field name, optionally suffixed with _min or _max, and a
numeric value.  Field names are checked against Fields before any
request is made.  An optional return list selects the fields in each
record:

	semimajor_axis, inclination, eccentricity

Each query has a Payload sibling returning the request parameters
without contacting the service, and a Raw sibling returning the
unparsed response.

An empty result is not an error.  The query returns nil and a "no
results" warning is logged through the client's zap logger.  A Client
made without WithLogger discards it; callers that need to tell an empty
result apart should check for nil.

Wire contract

Requests are POSTed to DefaultURL unless Config says otherwise, form
encoded, with json=1 and HTTP Basic authentication.  The default
credentials are the service's public account; Login replaces them.
*/
package mpc
