/*
Package problem holds the combinatorial problem instances which can be turned into QUBO form.
Every instance knows how to validate its own shape and how to evaluate an assignment in its native
variable space, which allows solving it exhaustively without going through any encoding.
*/
package problem
