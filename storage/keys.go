/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/declmodel/errors"
)

// EntityTypeAttribute is the item attribute carrying the storage entity type.
const EntityTypeAttribute = "EntityType"

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// ExpandKeys renders every index map template against data. A macro naming
// a missing or non-scalar attribute expands to the empty string.
func (c *Class) ExpandKeys(data map[string]any) (map[string]string, error) {
	if len(c.indexMap) == 0 {
		return nil, fmt.Errorf("storage %s: %w", c.name, errors.ErrNoIndexMap)
	}

	// Only marshal what the templates reference; relational values are not
	// meaningful key material.
	referenced := make(map[string]any)
	for _, template := range c.indexMap {
		for _, m := range macroPattern.FindAllStringSubmatch(template, -1) {
			if v, ok := data[m[1]]; ok {
				referenced[m[1]] = v
			}
		}
	}

	av, err := attributevalue.MarshalMap(referenced)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key attributes: %w", err)
	}

	res := make(map[string]string, len(c.indexMap))
	for field, template := range c.indexMap {
		res[field] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			val, ok := av[strings.Trim(macro, "{}")]
			if !ok {
				return ""
			}
			return scalarString(val)
		})
	}
	return res, nil
}

// Keys renders the index map into DynamoDB string attributes.
func (c *Class) Keys(data map[string]any) (map[string]types.AttributeValue, error) {
	expanded, err := c.ExpandKeys(data)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]types.AttributeValue, len(expanded))
	for k, v := range expanded {
		keys[k] = &types.AttributeValueMemberS{Value: v}
	}
	return keys, nil
}

// Item marshals data into an item carrying the expanded keys and, when the
// class declares one, the entity type.
func (c *Class) Item(data map[string]any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	keys, err := c.Keys(data)
	if err != nil {
		return nil, err
	}
	for k, v := range keys {
		item[k] = v
	}
	if c.entityType != "" {
		item[EntityTypeAttribute] = &types.AttributeValueMemberS{Value: c.entityType}
	}
	return item, nil
}

func scalarString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		// NULL, binary, sets, lists and maps have no key rendering
		return ""
	}
}
