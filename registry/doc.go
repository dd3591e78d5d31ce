/*
Package registry holds the type table shared by model declarations.

The type table maps a declared type name to its resolved block: a model
class or a custom attribute class. Declarations read it to resolve base
types, relational model types and custom attribute types, and write their
result back under their own name:

	table := registry.NewTable()
	table.Set(personClass)

	person, ok := registry.Lookup[*model.Class](table, "Person")

Redeclaring a name overwrites the entry. Types that already captured the
previous block keep pointing at it, so declaration order decides effective
inheritance.

The table is thread-safe. It is usually owned by the host and injected into
a model.Registry, which lets tests build isolated tables per case.
*/
package registry
