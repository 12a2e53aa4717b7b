// Package errors provides structured error handling for the storage
// controller.
//
// Errors carry a code, a message, optional metadata, and an optional
// wrapped cause. The code taxonomy mirrors how the controller treats
// failures:
//
//   - CodeInvalidArgument, CodeFailedPrecondition: caller or
//     configuration defects, such as pushing from an input inventory or
//     a recipe referencing an unregistered type. The offending call
//     aborts without mutating further state.
//   - CodeNotFound, CodeAlreadyExists: registry lookup and insertion
//     outcomes callers branch on.
//   - CodeUnavailable: the peripheral gateway or Redis is unreachable.
//   - CodeInternal: everything unexpected.
//
// Expected operational outcomes, like a destination filling up mid
// transfer or an item having no recipe, are not errors at all; they are
// communicated through return values.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("no recipe produces %s", name)
//
// Wrapping errors:
//
//	if err := h.Resync(ctx); err != nil {
//	    return errors.Wrap(err, "failed to resync inventory")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // treat the item as externally supplied
//	}
//
// Validating configuration:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Registry == nil {
//	    vb.RequiredField("Registry")
//	}
//	return vb.Build()
package errors
