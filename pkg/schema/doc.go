// Package schema loads declarative field constraints from YAML rulesets
// and OpenAPI component schemas and compiles them into form rule sets.
//
// Both sources produce the same closed constraint set from pkg/rules, so
// a form validated against a hand-written YAML document behaves exactly
// like one validated against the API schema it will eventually be
// submitted to. All misconfiguration is caught at load time; the compiled
// rules themselves never fail with an error.
package schema
