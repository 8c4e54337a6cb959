// Package match couples the score builder and the hungarian solver into
// one pairing pipeline and resolves the directed-assignment subtlety the
// raw solver leaves open.
//
// hungarian.Solve returns a row→column permutation over a single shared
// index space: assign[i] == j does not imply assign[j] == i. Whether
// that is acceptable is a policy decision, so the policy is explicit:
//
//   - Directed       — every row becomes a directed pair (i → assign[i]);
//     N pairs, nobody unpaired, maximal total score.
//   - MutualOnly     — keep only 2-cycles (i ↔ j); attendees outside a
//     2-cycle are reported in Result.Unpaired. Strictly mutual, possibly
//     incomplete.
//   - BipartiteSplit — split the roster into halves [0, N/2) and
//     [N/2, N) and solve the half-versus-half submatrix. Always mutual
//     and complete, but only optimal within the chosen split; requires
//     an even roster (ErrOddRoster otherwise).
//
// Solve wires the scoring sentinel into the solver's forbidden
// threshold, so a roster where someone's every candidate pair falls
// below the quality floor surfaces as hungarian.ErrInfeasible instead of
// a silent sentinel-priced matching.
//
// Format renders a Result as a plain-text report; no other output
// surface exists (no files, no logging — the pipeline is pure).
//
// Errors: score and hungarian sentinels are forwarded unchanged (match
// them with errors.Is), plus ErrUnknownMode and ErrOddRoster from this
// package.
package match
