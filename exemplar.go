/*
Package exemplar is a catalog of small, runnable software design studies.

Every study is a self-contained package that demonstrates exactly one idea:
a classic object composition pattern, an enterprise application idiom,
a refactoring technique shown as a before/after pair,
or a well known algorithmic exercise.

The ground rules of the catalog:

  - a study package never imports another study package.
    What you read in one directory is the whole story,
    there is no hidden collaboration between chapters.

  - every study can narrate itself.
    Each package exposes a Demo function that walks through the idea
    and prints an illustrative transcript.
    The same transcript is what you get from the exemplar command.

  - every study verifies itself.
    The claims a study makes in its documentation are backed by tests in the same package,
    including randomized equivalence checks where a study claims two forms behave the same.

The studies intentionally repeat small value types such as Money in more than one package.
Sharing them through a common package would be the tidy thing to do in a product codebase,
but here it would couple chapters that are meant to be read in isolation.
When a type shows up twice, that is the point where you can compare
how the same concept bends under a different idiom.

To browse the catalog:

	go run go.llib.dev/exemplar/cmd/exemplar list

To run a single study:

	go run go.llib.dev/exemplar/cmd/exemplar run pattern/builder
*/
package exemplar
