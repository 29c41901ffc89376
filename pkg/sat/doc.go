/*
Package sat solves problem instances in their native form with a MaxSAT solver. Constraints become hard
clauses or pseudo-boolean constraints, objectives become weighted soft clauses. The result is an exact
optimum which does not depend on any QUBO encoding and therefore serves as an independent oracle.
*/
package sat
