// SPDX-License-Identifier: EPL-2.0

// Package gain implements two-pass peak normalization.
//
// Normalization raises a quiet signal so its peak magnitude hits a target
// fraction of full scale (0.95 by default). The policy is amplify-only:
// silence and signals already at or above the target are returned
// unchanged, never attenuated.
//
// Two passes are required by construction. The gain factor is
// target/peak, and the peak is a global property of the signal: it is not
// known until every sample has been scanned. The first pass measures, the
// second applies.
package gain
