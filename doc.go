/*
Package soundlaw models historical sound change as reversible rewriting
rules over phoneme sequences.

Under active development; use at your own risk

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Overview

A sound change is written in a compact linear notation, for example

   V s > @1 z @1 / # p|b r _ t|d

denoting a source pattern (the "ante"), a target pattern (the "post")
and an optional environment ("context") with a focus marker "_" for the
position of the change. Package soundlaw holds the data model shared by
the sub-packages: the closed set of pattern tokens, feature deltas,
boundary-normalized sound sequences, compiled rules, and the result
type of pattern matching.

Sub-package notation compiles the linear notation into (ante, post)
token sequences, splicing the context in and re-indexing
back-references. Sub-package changer applies compiled rules to
sequences, forward (deterministic rewriting) and backward
(non-deterministic reconstruction of every ante-sequence consistent
with an observed output). Sub-package phonology provides an in-memory
implementation of the Phonology service interface, which resolves
sound classes and applies feature deltas to graphemes.

Typical Usage

Clients construct a phonology once, inject it into a changer, and apply
compiled rules:

   phon := phonology.TestModel()
   rule, _ := notation.Parse("p > b")
   ch := changer.New(phon)
   out, _ := ch.Forward(soundlaw.NewSequence("p a p a"), rule)
   // out.String() == "# b a b a #"

All entities in this package are immutable once constructed; rewriting
always produces new tokens and sequences. */
package soundlaw
