/*
Package notation compiles the linear sound-change notation into rules.

A rule is written as

   ante > post / left _ right

where ante, post and the optional context are whitespace-separated
atoms. Atoms are boundaries ("#"), the context focus ("_"), the empty
output (":null:"), back-references with optional modifier ("@1",
"@2[+voiced]"), capturing sets ("{u|o}"), non-capturing choices
("p|t"), sound classes ("V", "C[-voiced]") and literal segments
("p", "t[+voiced]", "[vowel]").

Compilation splices the context into both patterns and re-indexes the
back-references, so that the resulting Rule carries no environment of
its own: a token of the context that denotes more than a single fixed
grapheme surfaces in the compiled post pattern only as a
back-reference, never as a literal copy.

Licensed under the terms of the 3-Clause BSD license.
Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package notation
