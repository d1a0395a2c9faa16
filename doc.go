// Package quanta is an exact unit algebra engine.
//
// Physical units are represented as two integer vectors: a dimension
// vector over the eight axes mass, length, time, current, temperature,
// amount, luminosity and angle, and a scale vector of exponents over
// the primes 2, 3, 5 and the transcendental π. Unit composition,
// conversion and cancellation are pure integer arithmetic on these
// vectors; floating point enters only at the final conversion or
// display step, so chained conversions do not accumulate drift.
//
// Units whose ratio to the SI base is not expressible in the 2/3/5/π
// basis (the inch, the pound) carry an empirical conversion factor and
// are stored at their nearest power-of-ten neighbor; affine units (the
// Celsius and Fahrenheit temperature scales) additionally carry a
// zero-point offset. Both fold into the numeric value at the boundary,
// never into the exact scale.
//
// # Packages
//
//   - pkg/dimension: the eight-axis dimension vector
//   - pkg/scale: the exact prime-exponent scale vector
//   - pkg/registry: the static unit catalog, SI prefixes and lookup
//   - pkg/expr: the unit expression parser and evaluator
//   - pkg/policy: conversion, arithmetic and scale reconciliation
//   - pkg/quantity: values paired with units, parsing, JSON, rendering
//
// # Quick start
//
//	reg := registry.Default()
//	q, _ := quantity.Parse(reg, "9.81 m/s2")
//	v, _ := q.Convert(reg, "ft/s2")
//
// The quanta command exposes evaluation, conversion and the catalog on
// the command line; unitlint checks the catalog's symbol and
// conversion-factor invariants at build time.
package quanta
