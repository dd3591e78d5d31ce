/*
Package storage describes where and how instances of a model class are stored.

A storage Class is a descriptor, not a backend: a table name, an entity type
and an index map of key templates. Model declarations either pass a ready
Class, used as is, or Overrides merged onto the storage of their base model:

	people := storage.New(storage.Overrides{
	    Table:      "people",
	    EntityType: "PERSON",
	    IndexMap:   map[string]string{"PK": "PERSON#{id}", "SK": "PERSON#{id}"},
	})

	staff := people.Extend(storage.Overrides{
	    IndexMap: map[string]string{"GSI1PK": "TEAM#{team}"},
	})

Macro Expansion:
Templates reference attribute names in braces. Keys renders them into
DynamoDB string attributes, Item builds a full item with EntityType injected:

	keys, err := staff.Keys(map[string]any{"id": "p1", "team": "core"})
	// PK=PERSON#p1 SK=PERSON#p1 GSI1PK=TEAM#core
*/
package storage
