/*
Package sympoly computes with symmetric polynomials over variable sets subject
to algebraic relations. It decomposes polynomials that are invariant under the
permutation action into polynomials over a chosen generating set (elementary
symmetric polynomials, or the twisted Chern generators of the half-idempotent
ring Q[x_1,...,x_n,y_1,...,y_n]/(y_i^2=y_i)), expands such decompositions back
into the original variables, and enumerates and verifies the algebraic
relations the generators satisfy.

The library is organized in four packages:
  - scalar: exact rational coefficients and the generic coefficient constraint,
  - combin: lazy enumeration of permutations, combinations and bounded vectors,
  - poly: monomial containers, relation policies and polynomial arithmetic,
  - basis: the generic decomposition engine and the two generator families.
*/
package sympoly
