/*
Package qubo represents quadratic unconstrained binary optimization problems and solves them exactly by
enumerating every binary assignment. The exhaustive solver is meant as ground truth for small models only.
*/
package qubo
