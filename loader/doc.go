/*
Package loader declares model types from YAML manifests.

A manifest lists custom attribute types and model types. Attribute types are
declared first, then models in document order, so a model may only extend or
reference types declared before it:

	attributeTypes:
	  - name: Slug
	    type: String
	    default: untitled

	models:
	  - name: Person
	    storage:
	      table: people
	      entityType: PERSON
	      indexMap:
	        PK: "PERSON#{id}"
	        SK: "PROFILE"
	    attributes:
	      id: Id
	      name:
	        type: String
	        default: anonymous
	  - name: Team
	    attributes:
	      lead:
	        type: Model
	        modelType: Person
	      members:
	        type: ModelsList
	        modelType: Person

The attributes mapping keeps its YAML order, which becomes the schema order.
An attribute may be written as a bare type name; any key other than type,
modelType and default is kept as an attribute option.

A file may hold several YAML documents. LoadDir applies every .yaml and .yml
file below a directory in lexical path order.
*/
package loader
