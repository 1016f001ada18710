package router

import "github.com/pkg/errors"

// errInvalidChildCount marks a bug in the child-path bookkeeping: the
// number of refreshed child sub-paths did not match what the bend point
// count implies. It should never reach a caller — hitting it panics.
var errInvalidChildCount = errors.New("router: child path count does not match bendpoint count")

// errNegativeSpacing guards against a caller configuring a spacing that
// would make every obstacle cut ambiguous in sign.
var errNegativeSpacing = errors.New("router: spacing must be non-negative")
