// SPDX-License-Identifier: EPL-2.0

// Package fingerprint declares the collaborator surface for acoustic
// fingerprint extraction.
//
// The hashing math itself lives in external engines; this module's
// responsibility ends at producing a correctly formatted mono waveform at
// the engine's required rate and handing it to an Extractor.
package fingerprint
