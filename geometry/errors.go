package geometry

import "errors"

// ErrNearlySingular is returned when a vector is too close to zero length to
// define an orientation. In almost all cases the right way to handle it is to
// keep the previous orientation.
var ErrNearlySingular = errors.New("vector too close to zero to define an orientation")
