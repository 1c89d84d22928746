package contour

import "errors"

// ErrUnknownPoint describes a point the contour never assigned a layer to.
// PruneWithHint does not return it: for such a point it reports
// (false, 0).
var ErrUnknownPoint = errors.New("contour: point has no recorded layer")
