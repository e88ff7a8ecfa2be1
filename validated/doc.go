// Package validated accumulates failures from independent validations.
//
// A Validated[E, A] is either valid, holding an A, or invalid, holding an
// error container E. Combining two results with Map2 or Sequence keeps every
// failure in the order the results were supplied instead of stopping at the
// first one:
//
//	a := fuuid.FromStringVNel(userID)
//	b := fuuid.FromStringVNel(orgID)
//	pair := validated.Map2(a, b, func(u, o fuuid.FUUID) [2]fuuid.FUUID {
//	    return [2]fuuid.FUUID{u, o}
//	})
//	if errs, bad := pair.Errors(); bad {
//	    // errs holds one or two errors
//	}
//
// Two containers are provided. NonEmpty is a slice-backed list with cheap
// indexing; Chain concatenates in constant time and suits long batches
// where results are combined many times.
package validated
