/*
Command mpcquery queries the Minor Planet Center web service for the
orbits and physical properties of small solar system bodies.

Contents

  Program overview
  Installing
  Command line usage
  Configuration
  Output


Program overview

The MPC web service answers two kinds of query.  An object lookup takes a
single identifier: a name such as Eris, a number such as 136199, or a
provisional designation written without its space, such as 2008TC3.  A
constraint search takes clauses restricting catalog fields to values or
ranges and returns every matching object.

Identifiers and constraints are checked before anything is sent.  Field
names must be among the catalog fields known to package
github.com/soniakeys/mpcquery/mpc, and constraint values must be numeric.

Sample run:

  mpcquery Eris

lists the catalog fields of Eris followed by a short orbit summary,

  Inclination                    44°2′24.0″
  Perihelion distance            37.9568 AU
  Aphelion distance              97.6032 AU
  Period                         203821.9 days
  Tisserand (Jupiter)            4.738
  Orbit classes                  Int

Orbit classes are those digest2 reports, computed here from the
catalog elements rather than estimated from observations.


Installing

    go install github.com/soniakeys/mpcquery@latest


Command line usage

  Usage: mpcquery [options] <identifier>       look up one object
         mpcquery [options] -s <constraints>   search by constraints
         mpcquery -h                           display help and quick reference
         mpcquery -v                           display version and copyright

  Options:
         -c <config-file>
         -r <return fields>
         -payload
         -verbose

Constraints are comma separated clauses of a field name and a value.
A field name suffixed with _min or _max gives a lower or upper bound.
All known trans-Neptunian objects, for example:

  mpcquery -s "semimajor_axis_min 15" -r "name, semimajor_axis, inclination, eccentricity"

Option -r lists the fields to return.  Without it the service returns
all fields.

Option -payload shows the request parameters that would be sent, and
sends nothing.

Option -verbose logs debugging detail and warnings about records that
do not match the catalog schema or lack requested fields.


Configuration

Settings are read from the file named with -c, if any, then from
environment variables, which take precedence.  The file may be YAML,
TOML or JSON, chosen by extension.

	Key                 Environment variable         Default
	url                 MPCQUERY_URL                 http://mpcdb1.cfa.harvard.edu/ws/search
	timeout             MPCQUERY_TIMEOUT             60 (seconds, connecting)
	retrieval_timeout   MPCQUERY_RETRIEVAL_TIMEOUT   120 (seconds, whole request)
	username            MPCQUERY_USERNAME            mpc_ws
	password            MPCQUERY_PASSWORD            mpc!!ws
	verbose             MPCQUERY_VERBOSE             false


Output

An object lookup prints one line per catalog field, sorted by field
name.  A search prints a table with one column per returned field and a
record count.  A query that matches nothing prints nothing for a lookup
or "0 records" for a search, and logs the warning "no results".

-------------
Public domain.
*/
package main
