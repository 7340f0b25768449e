// Package router implements the hybrid query router: the decision policy
// that sends each incoming question down the cheapest adequate path.
//
// A request moves through an explicit state machine:
//
//	START -> EMBEDDING -> MATCHING -> {TEMPLATE_EXEC | FALLBACK_EXEC} -> DONE
//
// with exactly two backward transitions: an embedding failure and a
// template execution failure both demote the request to FALLBACK_EXEC.
// DONE and ERROR are the only exits; no request revisits MATCHING after
// leaving it.
//
// The router holds no per-request mutable state, so concurrent requests
// need no coordination. The template bank sits behind an atomic pointer:
// a reload swaps in a fresh bank while in-flight requests finish against
// the snapshot they started with.
package router
