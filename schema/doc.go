// Package schema loads a FIX protocol dictionary (fields, components,
// groups, messages) from XML into a *fix.Protocol, resolving the web
// of cross-references among them with the deferred-construction
// algorithm described for component forward references, and exposes
// [Locate] and [Registry] as the external-collaborator pieces the
// core model deliberately leaves out: finding the bundled dictionary
// file and caching parsed Protocols by version tag.
package schema
