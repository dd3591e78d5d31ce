/*
Package model declares model types from data and tracks their live instances.

Declaration:
A declaration names a type, optionally a base type, and a property bag whose
attribute list describes the schema in data rather than code:

	reg := model.New()

	person, err := reg.Declare("Person", model.Properties{
	    Attributes: []model.AttributeDef{
	        model.Attr("id", attribute.Decl{Type: attribute.KindID}),
	        model.Attr("name", attribute.Decl{Type: attribute.KindString}),
	    },
	})

	team, err := reg.Extend("Team", "Person", model.Properties{
	    Attributes: []model.AttributeDef{
	        model.Attr("members", attribute.Decl{Type: attribute.KindModelsList, ModelType: "Person"}),
	    },
	})

The base class is the existing declaration of the same name if there is
one, else the named base type, else the registry root. Declared attributes
are merged over the base schema, a redeclared attribute replacing the
inherited one as a whole. Each entry resolves to an attribute class: a ready
class is used as is, relational kinds are bound to their declared model
type, built-in kinds and custom attribute types are extended with the
declaration's fields. Unresolvable names fail the whole declaration.

Instances:
Every instance gets a fresh cid and joins the registry's instance list as
soon as it is constructed, before any class Init hook runs, and leaves it on
Destruct. Lookups scan the list in insertion order:

	p1, err := person.GetAnyByID("p1")   // get or create by identifier
	same, _ := person.GetAnyByID("p1")   // same instance
	first, err := person.GetOne()        // first live Person or subtype
	fresh, err := person.Create(nil)     // always a new instance

The identifier attribute is the first schema entry whose class derives from
the Id kind, "id" when there is none.

A Registry is an explicit context: the type table, attribute kinds, instance
list backing, cid generator and logger are all injectable.
*/
package model
