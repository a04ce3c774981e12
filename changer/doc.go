/*
Package changer applies compiled sound-change rules to sequences.

A Changer is constructed once with a Phonology service and is then
safe for concurrent use. It matches windows of a sequence against
compiled patterns and transduces in two directions: Forward rewrites a
sequence deterministically, Backward reconstructs the set of every
ante-sequence that the rule could have turned into the given output.

Both directions scan with non-overlapping windows, leftmost first: a
rewritten window is consumed whole, so changes never re-trigger on
their own output.

Licensed under the terms of the 3-Clause BSD license.
Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package changer
