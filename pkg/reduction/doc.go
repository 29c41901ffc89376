/*
Package reduction encodes combinatorial problems as QUBO models. Constraints are folded into the objective
as penalty terms scaled by the instance's penalty weight; the weight has to dominate the objective for the
encoding to be exact, which SufficientPenalty can take care of.
*/
package reduction
