// Package errors provides coded errors for rpg-sheet.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of a coded cause:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load session state")
//	}
//
// Config and input validation goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Rules derivations never return errors for missing catalog data; coded
// errors are reserved for programming mistakes (nil inputs, bad config) and
// for storage failures surfaced by repositories.
package errors
