/*
Package errors provides semantic error types for the declmodel library.

The package defines the configuration and lookup failures of model
declaration with specific types that can be checked using the standard
errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrUnknownBaseType           = errors.New("unknown base type")
	    ErrUnknownAttributeModelType = errors.New("unknown attribute modelType")
	    ErrUnknownAttributeType      = errors.New("unknown attribute type")
	    ErrNotImplemented            = errors.New("not implemented")
	)

Usage:

	_, err := reg.Extend("Team", "Person", props)
	if err != nil {
	    if errors.IsUnknownBaseType(err) {
	        // Person must be declared before Team
	    }
	    return err
	}

Declaration errors are programmer errors: they surface synchronously and
are never retried.
*/
package errors
