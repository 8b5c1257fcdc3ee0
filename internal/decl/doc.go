// Package decl models the documentable declarations handed over by the host
// frontend: kind, modifiers, identifiers, parameters and the attached raw
// documentation comment. The engine only ever reads these values.
package decl
