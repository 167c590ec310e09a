// Package label compiles place-name localization into declarative expression
// trees for a style engine whose language has no loops, no general mutation,
// and only bounded recursion.
//
// A consumer's locale preference resolves into an ordered fallback chain
// (ResolveChain), the chain selects name fields in priority order
// (LocalizedNameExpression), and the result composes with the local-language
// spelling four different ways (NameWithLocalGloss). Iterative string work,
// such as pretty-printing delimiter-separated value lists, is emulated with
// depth-bounded recursive replacement (ReplaceBounded, FormatDelimitedList).
//
// Everything here is a pure function from inputs to a fresh tree, built once
// per locale-change event. The engine that evaluates the finished trees is an
// external collaborator and out of scope.
package label
