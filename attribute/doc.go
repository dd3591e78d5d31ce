/*
Package attribute provides the attribute classes model schemas are built from.

An attribute Class holds and validates the value of one model attribute.
Every class derives from a built-in kind:

	String, Number, Boolean, Id, DateTime, UUID, Email, Object
	Model, ModelsList, Collection

Id is the identifying kind: a model's identifier attribute is the first one
whose class derives from it. DateTime, UUID and Email values are parsed and
checked with go-openapi/strfmt.

The relational kinds hold instances of another declared model type. They are
bound to that type with Bind, which takes a ModelType so this package never
depends on the model package:

	owner := attribute.Model.Extend(attribute.Decl{}).Bind(personClass)

A schema entry is declared either as a ready *Class or as a Decl naming its
type; the model package resolves Decl values against Builtins and the type
table.
*/
package attribute
