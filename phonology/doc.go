/*
Package phonology provides a descriptor-based sound model.

A Model maps graphemes to sets of phonological descriptors (for "p"
something like voiceless, bilabial, stop, consonant), each descriptor
belonging to a kind (voicing, place, manner, type). Feature deltas are
applied by descriptor substitution: a positive feature replaces the
descriptor of the same kind, a negative one is simply dropped, and a
key=value feature replaces by kind name. The resulting descriptor set
must correspond to exactly one grapheme of the inventory, otherwise
the modifier is unresolved.

Inverse application, needed for reconstruction, searches the inventory
for the grapheme the forward application would have started from.
Where the search is ambiguous an exception table, filled by the
client, decides.

Licensed under the terms of the 3-Clause BSD license.
Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package phonology
