/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnknownBaseType is returned when a declaration names a base type that is not in the type table
	ErrUnknownBaseType = errors.New("unknown base type")

	// ErrUnknownAttributeModelType is returned when a relational attribute references an undeclared model type
	ErrUnknownAttributeModelType = errors.New("unknown attribute modelType")

	// ErrUnknownAttributeType is returned when an attribute type is neither built-in nor registered
	ErrUnknownAttributeType = errors.New("unknown attribute type")

	// ErrNotImplemented is returned when an abstract operation was not supplied by the host
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotFound is returned when a type or instance is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an instance is tracked twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when attribute value validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoIndexMap is returned when a storage descriptor carries no index map
	ErrNoIndexMap = errors.New("no index map found for storage")
)

// UnknownBaseTypeError is returned by a declaration whose base type is missing
// from the type table, or names something that is not a model class.
type UnknownBaseTypeError struct {
	Type string
	Base string
}

func (e *UnknownBaseTypeError) Error() string {
	return fmt.Sprintf("declare %s: unknown base type %q", e.Type, e.Base)
}

func (e *UnknownBaseTypeError) Is(target error) bool {
	return target == ErrUnknownBaseType
}

// UnknownAttributeModelTypeError is returned when a Model, ModelsList or
// Collection attribute points at a model type that has not been declared yet.
type UnknownAttributeModelTypeError struct {
	Type      string
	Attribute string
	ModelType string
}

func (e *UnknownAttributeModelTypeError) Error() string {
	return fmt.Sprintf("declare %s: attribute %q: unknown attribute modelType %q", e.Type, e.Attribute, e.ModelType)
}

func (e *UnknownAttributeModelTypeError) Is(target error) bool {
	return target == ErrUnknownAttributeModelType
}

// UnknownAttributeTypeError represents an attribute whose type could not be resolved
type UnknownAttributeTypeError struct {
	Type          string
	Attribute     string
	AttributeType string
}

func (e *UnknownAttributeTypeError) Error() string {
	return fmt.Sprintf("declare %s: attribute %q: unknown attribute type %q", e.Type, e.Attribute, e.AttributeType)
}

func (e *UnknownAttributeTypeError) Is(target error) bool {
	return target == ErrUnknownAttributeType
}

// NotImplementedError represents an abstract operation with no host implementation
type NotImplementedError struct {
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: not implemented", e.Operation)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// NotFoundError represents an error when a type or instance is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Type)
	}
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an instance is already tracked
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an attribute value validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewUnknownBaseTypeError creates a new UnknownBaseTypeError
func NewUnknownBaseTypeError(typeName, base string) error {
	return &UnknownBaseTypeError{Type: typeName, Base: base}
}

// NewUnknownAttributeModelTypeError creates a new UnknownAttributeModelTypeError
func NewUnknownAttributeModelTypeError(typeName, attribute, modelType string) error {
	return &UnknownAttributeModelTypeError{Type: typeName, Attribute: attribute, ModelType: modelType}
}

// NewUnknownAttributeTypeError creates a new UnknownAttributeTypeError
func NewUnknownAttributeTypeError(typeName, attribute, attributeType string) error {
	return &UnknownAttributeTypeError{Type: typeName, Attribute: attribute, AttributeType: attributeType}
}

// NewNotImplementedError creates a new NotImplementedError
func NewNotImplementedError(operation string) error {
	return &NotImplementedError{Operation: operation}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(typeName, key string) error {
	return &NotFoundError{Type: typeName, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(typeName, key string) error {
	return &AlreadyExistsError{Type: typeName, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUnknownBaseType checks if an error is an unknown base type error
func IsUnknownBaseType(err error) bool {
	return errors.Is(err, ErrUnknownBaseType)
}

// IsUnknownAttributeModelType checks if an error is an unknown attribute modelType error
func IsUnknownAttributeModelType(err error) bool {
	return errors.Is(err, ErrUnknownAttributeModelType)
}

// IsUnknownAttributeType checks if an error is an unknown attribute type error
func IsUnknownAttributeType(err error) bool {
	return errors.Is(err, ErrUnknownAttributeType)
}

// IsNotImplemented checks if an error is a not implemented error
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
