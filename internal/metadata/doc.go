// Package metadata resolves project names to their compatibility metadata
// and derived classification (normal, editor-only, package).
//
// Resolution is backed by pluggable sources: a file source that scans
// assembly-definition (.asmdef) JSON files under the rewrite root, and a
// static source fed from tool configuration. Results are cached for the
// lifetime of the Resolver, so each project is resolved at most once per
// run.
package metadata
