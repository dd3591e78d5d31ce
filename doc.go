/*
Package declmodel resolves declarative model type definitions and tracks the
instances created from them.

A declaration names a type, optionally a base type, and a set of attributes.
Resolution merges the declaration over its base: inherited attributes keep
their position, new ones are appended, and a redeclared attribute replaces
the inherited entry as a whole. Every resolved class is registered in a type
table under its name, where later declarations can extend or reference it.

Instances live in a single registry-wide list in creation order. Each class
offers get-or-create lookups over that list:

	person, _ := declmodel.Declare("Person", declmodel.Properties{
		Attributes: []declmodel.AttributeDef{
			declmodel.Attr("id", attribute.Decl{Type: attribute.KindID}),
			declmodel.Attr("name", attribute.Decl{Type: attribute.KindString}),
		},
	})

	ada, _ := person.GetAnyByID("p1")  // created
	same, _ := person.GetAnyByID("p1") // found, same instance

The package-level functions operate on a process-wide registry returned by
Default. Programs that need isolated registries use model.New directly.

Subpackages:
  - model: registry, classes, instances and the instance list
  - attribute: attribute classes and the built-in kinds
  - storage: storage descriptors and index map key expansion
  - registry: the type table
  - loader: YAML manifests of declarations
  - errors: semantic error types
*/
package declmodel
