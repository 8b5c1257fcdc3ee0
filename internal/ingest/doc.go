// Package ingest decodes lint batches: the serialized form in which a host
// frontend hands pre-parsed declarations and comment trivia to the engine.
// Batches arrive as JSON, YAML or msgpack; the wire contract is validated
// up front, and a malformed batch aborts the run with an error rather than
// turning into findings.
package ingest
