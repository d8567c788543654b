// Package errors provides the coded error type shared by the engine, the
// round log repositories and the melee CLI.
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store round summary")
//	}
//
// Fighter validation collects every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("fighters[0].id", record.ID, vb)
//	errors.ValidateRange("fighters[0].attributes.pe", record.Attributes.PE, 1, 40, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Engine construction returns InvalidArgument for malformed fighters and
// out of order calls return FailedPrecondition. A melee round only fails when
// its context ends, with Canceled. Everything else inside a round is logged
// and degraded. The CLI exits with Code.ExitCode.
package errors
