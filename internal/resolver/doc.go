// Package resolver answers reflection queries over a reflection.Database.
//
// # Queries
//
//   - FindPropertyInfo: the type and default of a property, looked up on the
//     class and then on each ancestor. The nearest declaring class wins and
//     ancestor declarations are never merged into the result.
//   - ClassExists: whether a class name is present in the database.
//   - ClassIsA: whether a class equals, or derives from, another class.
//   - ClassIsAService: whether a class or any ancestor carries the service tag.
//
// # Three-valued results
//
// ClassIsA and ClassIsAService return (result, known). known is false when the
// superclass chain runs into a class name that the database does not contain;
// the answer could not be verified and result must be ignored. A known false
// means the full chain was inspected without a match.
//
// FindPropertyInfo treats a missing class anywhere in the chain the same as an
// exhausted chain and reports the property as not found.
//
// # Traversal
//
// All queries share Ancestors, an iterator over the superclass chain that
// stops at the first missing class. Chains longer than the database are cut
// short and reported as unresolved so a cyclic superclass link cannot hang a
// caller.
//
// # Concurrency
//
// A Resolver never mutates its state or the database after New returns. All
// methods are safe for concurrent use and do not block.
package resolver
