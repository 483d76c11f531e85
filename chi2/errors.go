// SPDX-License-Identifier: MIT

package chi2

import "errors"

// ErrNilDataset indicates a nil *dataset.Dataset argument.
var ErrNilDataset = errors.New("chi2: nil dataset")
